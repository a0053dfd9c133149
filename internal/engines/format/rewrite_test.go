package format

import (
	"testing"
)

func TestNormalizePointers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"asterisk on type", "int* x;\n", "int *x;\n"},
		{"asterisk floating", "int * x;\n", "int *x;\n"},
		{"extra spaces", "int*  x;\n", "int *x;\n"},
		{"already normalized", "int *x;\n", "int *x;\n"},
		{"multiple declarations", "char* a; char* b;\n", "char *a; char *b;\n"},
		{"inside function header", "void f(struct node* n)\n", "void f(struct node *n)\n"},
		{"multiplication rewritten too", "y = a * b;\n", "y = a *b;\n"},
		{"no pointer", "return 0;\n", "return 0;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePointers(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePointers(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// Normalization is idempotent
			if again := NormalizePointers(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestRewriteBraces(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "lone braces pass through byte-identical",
			input: []string{"{\n", "    {\n", "}\n", "\t}\n"},
			want:  []string{"{\n", "    {\n", "}\n", "\t}\n"},
		},
		{
			name:  "function header with empty trailing text",
			input: []string{"int main(void) {\n"},
			want:  []string{"int main(void)\n", "{\n"},
		},
		{
			name:  "indented header keeps line indentation for the brace",
			input: []string{"    while (1) {\n"},
			want:  []string{"    while (1)\n", "    {\n"},
		},
		{
			name:  "header with trailing statement",
			input: []string{"if (x) { return 1;\n"},
			want:  []string{"if (x)\n", "{\n", "return 1;\n"},
		},
		{
			name:  "else compound splits into three lines",
			input: []string{"    } else {\n"},
			want:  []string{"    }\n", "    else\n", "    {\n"},
		},
		{
			name:  "else if keeps its condition",
			input: []string{"    } else if (x > 0) {\n"},
			want:  []string{"    }\n", "    else if (x > 0)\n", "    {\n"},
		},
		{
			name:  "brace without preceding parenthesis is left alone",
			input: []string{"struct point p = { 0 };\n"},
			want:  []string{"struct point p = { 0 };\n"},
		},
		{
			name:  "plain statements pass through",
			input: []string{"int x = 5;\n", "\n", "return x;\n"},
			want:  []string{"int x = 5;\n", "\n", "return x;\n"},
		},
		{
			name: "mixed sequence",
			input: []string{
				"int main(void) {\n",
				"    if (x) {\n",
				"        y = 1;\n",
				"    } else {\n",
				"        y = 2;\n",
				"    }\n",
				"}\n",
			},
			want: []string{
				"int main(void)\n",
				"{\n",
				"    if (x)\n",
				"    {\n",
				"        y = 1;\n",
				"    }\n",
				"    else\n",
				"    {\n",
				"        y = 2;\n",
				"    }\n",
				"}\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteBraces(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("RewriteBraces() produced %d lines, want %d:\ngot:  %q\nwant: %q",
					len(got), len(tt.want), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i+1, got[i], tt.want[i])
				}
			}

			// The rewriter only splits lines; it never merges them
			if len(got) < len(tt.input) {
				t.Errorf("output shrank from %d to %d lines", len(tt.input), len(got))
			}
		})
	}
}

func TestFixPipelineOrder(t *testing.T) {
	// Pointer normalization runs before the brace rewrite, so a header
	// carrying both violations comes out fully fixed.
	input := []string{"void f(int* p) {\n"}
	want := []string{"void f(int *p)\n", "{\n"}

	got := Fix(input)
	if len(got) != len(want) {
		t.Fatalf("Fix() produced %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i+1, got[i], want[i])
		}
	}
}
