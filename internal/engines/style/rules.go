package style

import (
	"regexp"

	"github.com/santosr2/ctidy/pkg/sdk"
)

// Detection patterns, applied to raw line text. String literals and
// comments are not exempted: brace-like or pointer-like text inside them
// matches the same as code. That imprecision is part of the contract.
var (
	pointerSpacingPattern       = regexp.MustCompile(`\b(\w+)\s*\*\s*(\w+)`)
	braceOnSameLinePattern      = regexp.MustCompile(`\)\s*\{`)
	openingBraceNotAlonePattern = regexp.MustCompile(`[^\s].*\{.*[^\s}]`)
	closingBraceNotAlonePattern = regexp.MustCompile(`[^\s].*}.*[^\s{]`)
)

// PointerSpacingRule flags pointer declarations where the asterisk binds
// to the type instead of the variable name.
type PointerSpacingRule struct{}

func (r *PointerSpacingRule) Name() string {
	return "style.pointer-spacing"
}

func (r *PointerSpacingRule) Description() string {
	return "Ensures the '*' in pointer declarations binds to the variable name"
}

func (r *PointerSpacingRule) Message() string {
	return "put '*' next to variable (e.g., 'int* x')"
}

func (r *PointerSpacingRule) Match(line string) bool {
	return pointerSpacingPattern.MatchString(line)
}

// BraceNewLineRule flags an opening brace placed on the same line as the
// closing parenthesis of a function or control header.
type BraceNewLineRule struct{}

func (r *BraceNewLineRule) Name() string {
	return "style.brace-new-line"
}

func (r *BraceNewLineRule) Description() string {
	return "Ensures the body brace of a header goes on its own line"
}

func (r *BraceNewLineRule) Message() string {
	return "'{' must be on a new line"
}

func (r *BraceNewLineRule) Match(line string) bool {
	return braceOnSameLinePattern.MatchString(line)
}

// OpeningBraceAloneRule flags lines where an opening brace shares the line
// with other meaningful content.
type OpeningBraceAloneRule struct{}

func (r *OpeningBraceAloneRule) Name() string {
	return "style.opening-brace-alone"
}

func (r *OpeningBraceAloneRule) Description() string {
	return "Ensures opening braces occupy their own line"
}

func (r *OpeningBraceAloneRule) Message() string {
	return "'{' should be on its own line"
}

func (r *OpeningBraceAloneRule) Match(line string) bool {
	return openingBraceNotAlonePattern.MatchString(line)
}

// ClosingBraceAloneRule is the symmetric check for closing braces.
type ClosingBraceAloneRule struct{}

func (r *ClosingBraceAloneRule) Name() string {
	return "style.closing-brace-alone"
}

func (r *ClosingBraceAloneRule) Description() string {
	return "Ensures closing braces occupy their own line"
}

func (r *ClosingBraceAloneRule) Message() string {
	return "'}' should be on its own line"
}

func (r *ClosingBraceAloneRule) Match(line string) bool {
	return closingBraceNotAlonePattern.MatchString(line)
}

// Rules returns the built-in rules in reporting order. The order is fixed:
// a line that trips several rules emits its diagnostics in this sequence.
func Rules() []sdk.Rule {
	return []sdk.Rule{
		&PointerSpacingRule{},
		&BraceNewLineRule{},
		&OpeningBraceAloneRule{},
		&ClosingBraceAloneRule{},
	}
}
