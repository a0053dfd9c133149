package style

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Match(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "pointer next to type",
			line: "int* x;\n",
			want: []string{"style.pointer-spacing"},
		},
		{
			name: "pointer next to variable still matches the detection pattern",
			line: "int *x;\n",
			want: []string{"style.pointer-spacing"},
		},
		{
			name: "header brace with nothing after it",
			line: "int main(void) {\n",
			want: []string{"style.brace-new-line"},
		},
		{
			name: "header brace with trailing statement",
			line: "if (x) { return 1;\n",
			want: []string{
				"style.brace-new-line",
				"style.opening-brace-alone",
			},
		},
		{
			name: "braces embedded in a statement",
			line: "do { x++; } while (x < 10);\n",
			want: []string{
				"style.opening-brace-alone",
				"style.closing-brace-alone",
			},
		},
		{
			name: "pointer declaration inside a header",
			line: "void f(int* p) {\n",
			want: []string{
				"style.pointer-spacing",
				"style.brace-new-line",
			},
		},
		{
			name: "else compound form is not flagged",
			line: "    } else {\n",
			want: nil,
		},
		{
			name: "lone opening brace",
			line: "{\n",
			want: nil,
		},
		{
			name: "lone closing brace",
			line: "    }\n",
			want: nil,
		},
		{
			name: "plain statement",
			line: "return 0;\n",
			want: nil,
		},
		{
			name: "blank line",
			line: "\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var matched []string
			for _, rule := range Rules() {
				if rule.Match(tt.line) {
					matched = append(matched, rule.Name())
				}
			}
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestEngine_LintLines(t *testing.T) {
	engine := New()

	lines := []string{
		"int* x;\n",
		"if (x) { y = 1;\n",
		"{\n",
		"}\n",
	}

	findings := engine.LintLines("test.c", lines)
	require.Len(t, findings, 3)

	// Line numbers are 1-based and findings come out in line order, with
	// the fixed rule order within a line.
	assert.Equal(t, 1, findings[0].Line)
	assert.Equal(t, "style.pointer-spacing", findings[0].Rule)
	assert.Equal(t, "put '*' next to variable (e.g., 'int* x')", findings[0].Message)

	assert.Equal(t, 2, findings[1].Line)
	assert.Equal(t, "style.brace-new-line", findings[1].Rule)
	assert.Equal(t, "'{' must be on a new line", findings[1].Message)

	assert.Equal(t, 2, findings[2].Line)
	assert.Equal(t, "style.opening-brace-alone", findings[2].Rule)
	assert.Equal(t, "'{' should be on its own line", findings[2].Message)

	for _, f := range findings {
		assert.Equal(t, "test.c", f.File)
	}
}

func TestEngine_LintLines_CleanFile(t *testing.T) {
	engine := New()

	lines := []string{
		"int main(void)\n",
		"{\n",
		"    return 0;\n",
		"}\n",
	}

	findings := engine.LintLines("clean.c", lines)
	assert.Empty(t, findings)
}

func TestEngine_Run(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		wantFinding bool
	}{
		{
			name: "clean file",
			content: `int main(void)
{
    return 0;
}
`,
			wantErr:     false,
			wantFinding: false,
		},
		{
			name: "brace violations",
			content: `int main(void) {
    return 0;
}
`,
			wantErr:     false,
			wantFinding: true,
		},
		{
			name:        "clean crlf file",
			content:     "int main(void)\r\n{\r\n    return 0;\r\n}\r\n",
			wantErr:     false,
			wantFinding: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp file
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "test.c")
			require.NoError(t, os.WriteFile(tmpFile, []byte(tt.content), 0o644))

			engine := New()

			findings, err := engine.Run(context.Background(), []string{tmpFile})
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantFinding {
				assert.NotEmpty(t, findings)
			} else {
				assert.Empty(t, findings)
			}
		})
	}
}

func TestEngine_Run_MissingFile(t *testing.T) {
	engine := New()
	_, err := engine.Run(context.Background(), []string{"does-not-exist.c"})
	require.Error(t, err)
}
