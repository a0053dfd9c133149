// Package format provides the fix engine for ctidy.
// It normalizes pointer spacing and relocates braces onto their own lines,
// rewriting whole files in place. Files are read in full, transformed as a
// line sequence, and written back in a single overwrite.
package format

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santosr2/ctidy/pkg/sdk"
)

// Engine represents the fix engine
type Engine struct {
	config *Config
}

// Config holds the fix engine configuration
type Config struct {
	Check bool // Check mode (don't modify files)
}

// New creates a new fix engine
func New(config *Config) *Engine {
	if config == nil {
		config = &Config{}
	}
	return &Engine{config: config}
}

// Name returns the engine name
func (e *Engine) Name() string {
	return "fmt"
}

// Run executes the fix engine on the given files
func (e *Engine) Run(ctx context.Context, files []string) ([]sdk.Finding, error) {
	var findings []sdk.Finding

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Skip non-C files
		if !IsCFile(file) {
			continue
		}

		result, err := e.fixFile(file)
		if err != nil {
			return nil, fmt.Errorf("fixing %s: %w", file, err)
		}

		if result != nil {
			findings = append(findings, *result)
		}
	}

	return findings, nil
}

// fixFile fixes a single file and returns a finding if changes were needed
func (e *Engine) fixFile(path string) (*sdk.Finding, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	fixed := strings.Join(Fix(SplitLines(string(original))), "")

	if fixed == string(original) {
		return nil, nil // Already clean
	}

	if e.config.Check {
		return &sdk.Finding{
			Rule:     "fmt.needs-formatting",
			Message:  "File needs formatting",
			File:     path,
			Severity: sdk.SeverityError,
			Fixable:  true,
		}, nil
	}

	if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
		return nil, fmt.Errorf("writing fixed file: %w", err)
	}

	return &sdk.Finding{
		Rule:     "fmt.formatted",
		Message:  "File formatted successfully",
		File:     path,
		Severity: sdk.SeverityInfo,
		Fixable:  false,
	}, nil
}

// FixFile rewrites the file at path in place and returns the resulting
// line sequence. The file is always overwritten, even when nothing
// changed. Callers that want to lint the result should lint the returned
// lines rather than re-reading the file.
func FixFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := Fix(SplitLines(string(content)))

	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	return lines, nil
}

// Fix applies the full fix pipeline to a line sequence: pointer
// normalization on every line first, then the brace rewrite over the whole
// sequence.
func Fix(lines []string) []string {
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = NormalizePointers(line)
	}
	return RewriteBraces(normalized)
}

// SplitLines splits content into lines, each keeping its trailing newline.
// CRLF terminators are normalized to LF first, matching a universal-newline
// read. The final line is kept even when it has no terminator.
func SplitLines(content string) []string {
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

// IsCFile checks if a file has a .c or .h extension. The check is
// case-sensitive: .C and .H files are not selected.
func IsCFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".c" || ext == ".h"
}
