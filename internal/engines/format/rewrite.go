package format

import (
	"regexp"
	"strings"
)

// Rewrite patterns. These are shape matchers, not a parser: they classify
// one raw line at a time and never consult neighboring lines.
var (
	pointerSpacingPattern = regexp.MustCompile(`\b(\w+)\s*\*\s*(\w+)`)
	elseBracePattern      = regexp.MustCompile(`^(\s*)}\s*(else(?: if)?\b[^{]*)\s*\{`)
	headerBracePattern    = regexp.MustCompile(`(.*\))\s*\{\s*(.*)`)
	indentPattern         = regexp.MustCompile(`^\s*`)
)

const pointerSpacingReplacement = "${1} *${2}"

// NormalizePointers rewrites pointer declarations so the asterisk binds to
// the variable name: "int* x" and "int * x" both become "int *x". Every
// occurrence on the line is rewritten. The match is purely lexical, so a
// multiplication like "a * b" is rewritten too; accepted imprecision.
func NormalizePointers(line string) string {
	return pointerSpacingPattern.ReplaceAllString(line, pointerSpacingReplacement)
}

// RewriteBraces relocates braces onto their own lines. Each input line is
// classified against a fixed precedence of shapes and only the first match
// applies:
//
//  1. a lone "{" or "}" (modulo surrounding whitespace) passes through
//     byte-identical;
//  2. "} else {" / "} else if (...) {" splits into three lines sharing the
//     indentation captured by the match;
//  3. "header(...) { trailing" splits into the header line, an indented
//     lone "{", and an indented trailing line when the trailing text is
//     non-empty;
//  4. anything else passes through unmodified.
//
// Lines produced by a split always end in a newline; passthrough lines
// keep their original bytes. The rewriter never merges lines, so the
// output is never shorter than the input. Shapes the patterns cannot
// express (a brace with no preceding closing parenthesis, several headers
// nested on one line) are deliberately left alone; the linter still flags
// them afterward.
func RewriteBraces(lines []string) []string {
	newLines := make([]string, 0, len(lines))

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		indent := indentPattern.FindString(line)

		// Keep lone braces
		if stripped == "{" || stripped == "}" {
			newLines = append(newLines, line)
			continue
		}

		// Special case: "} else {" or "} else if (...) {"
		if m := elseBracePattern.FindStringSubmatch(line); m != nil {
			ind := m[1]
			control := strings.TrimSpace(m[2])
			newLines = append(newLines, ind+"}\n", ind+control+"\n", ind+"{\n")
			continue
		}

		// General case: "(...) {"
		if m := headerBracePattern.FindStringSubmatch(line); m != nil {
			prefix := m[1]
			suffix := strings.TrimSpace(m[2])
			newLines = append(newLines, prefix+"\n", indent+"{\n")
			if suffix != "" {
				newLines = append(newLines, indent+suffix+"\n")
			}
			continue
		}

		newLines = append(newLines, line)
	}

	return newLines
}
