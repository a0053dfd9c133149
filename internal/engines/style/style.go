// Package style provides the lint engine for ctidy.
// It scans C source lines against a fixed set of brace-placement and
// pointer-spacing rules. The rule set is not configurable.
package style

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/santosr2/ctidy/pkg/sdk"
)

// Engine represents the style engine
type Engine struct {
	rules []sdk.Rule
}

// New creates a new style engine with the built-in rules registered.
func New() *Engine {
	return &Engine{rules: Rules()}
}

// Name returns the engine name
func (e *Engine) Name() string {
	return "style"
}

// Run executes the style engine on the given files
func (e *Engine) Run(ctx context.Context, files []string) ([]sdk.Finding, error) {
	var allFindings []sdk.Finding

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		findings, err := e.checkFile(file)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", file, err)
		}

		allFindings = append(allFindings, findings...)
	}

	return allFindings, nil
}

// checkFile lints a single file from disk
func (e *Engine) checkFile(path string) ([]sdk.Finding, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return e.LintLines(path, splitLines(string(content))), nil
}

// LintLines checks an in-memory line sequence and returns every violation.
// Each line is checked independently against every rule; a single line can
// emit up to one finding per rule. Line numbers are 1-based. The caller
// decides whether the sequence is pre-fix or post-fix; the linter does not
// re-read the file.
func (e *Engine) LintLines(path string, lines []string) []sdk.Finding {
	var findings []sdk.Finding

	for i, line := range lines {
		for _, rule := range e.rules {
			if !rule.Match(line) {
				continue
			}
			findings = append(findings, sdk.Finding{
				Rule:     rule.Name(),
				Message:  rule.Message(),
				File:     path,
				Line:     i + 1,
				Severity: sdk.SeverityWarning,
				Fixable:  true,
			})
		}
	}

	return findings
}

// splitLines splits content into lines, each keeping its trailing newline.
// CRLF terminators are normalized to LF first, matching a universal-newline
// read. The final line is kept even when it has no terminator.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var lines []string
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}
