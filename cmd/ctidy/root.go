package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	fmtengine "github.com/santosr2/ctidy/internal/engines/format"
	"github.com/santosr2/ctidy/internal/engines/style"
	"github.com/spf13/cobra"
)

var (
	cfgFile           string
	format            string
	changed           bool
	severityThreshold string
)

// Status and error messages for the classic positional surface.
const (
	msgUsage        = "Usage: ctidy <file_or_dir> <fix:true|false>"
	msgLintComplete = "✅ %s linting and formatting complete.\n"
	msgNotFound     = "❌ Error: %s is not a file or directory."
	msgWrongExt     = "❌ Error: %s is not a C or header file."
)

// usageError is a diagnostic the classic surface prints verbatim to
// stdout before exiting with status 1.
type usageError string

func (e usageError) Error() string { return string(e) }

var rootCmd = &cobra.Command{
	Use:   "ctidy <file_or_dir> <fix:true|false>",
	Short: "ctidy - C brace and pointer style checker",
	Long: `ctidy checks C source files against a small fixed set of brace-placement
and pointer-spacing conventions, and can rewrite files to satisfy them.

It works line by line on raw text. There is no parser: string literals and
comments are checked the same as code.

Called with two positional arguments it behaves like the classic tool:
lint (and optionally fix) a file or directory tree of .c/.h files. The
subcommands offer the same engines with richer output.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runLegacy,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .ctidy.yaml)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format (text|json|sarif)")
	rootCmd.PersistentFlags().BoolVar(&changed, "changed", false, "only check changed files")
	rootCmd.PersistentFlags().StringVar(&severityThreshold, "severity-threshold", "", "minimum severity level to fail (info|warning|error)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// resolveLegacyTarget validates the classic two-argument invocation and
// expands the target into the list of files to process. The three
// rejection cases (too few arguments, wrong extension, path neither file
// nor directory) come back as a usageError carrying the exact line to
// print; anything else is a real I/O failure.
func resolveLegacyTarget(args []string) ([]string, bool, error) {
	if len(args) < 2 {
		return nil, false, usageError(msgUsage)
	}

	target := args[0]
	doFix := strings.EqualFold(args[1], "true")

	info, err := os.Stat(target)
	switch {
	case err == nil && !info.IsDir():
		if !fmtengine.IsCFile(target) {
			return nil, false, usageError(fmt.Sprintf(msgWrongExt, target))
		}
		return []string{target}, doFix, nil
	case err == nil && info.IsDir():
		files, err := findCFiles([]string{target})
		if err != nil {
			return nil, false, fmt.Errorf("finding files: %w", err)
		}
		return files, doFix, nil
	default:
		return nil, false, usageError(fmt.Sprintf(msgNotFound, target))
	}
}

// runLegacy implements the classic two-argument invocation. Messages, exit
// codes and processing order match the original tool: fix (when enabled)
// and lint each file in walk order, abort the whole run on the first I/O
// failure, exit 0 whenever the run completes regardless of findings.
func runLegacy(_ *cobra.Command, args []string) error {
	files, doFix, err := resolveLegacyTarget(args)
	var diag usageError
	if errors.As(err, &diag) {
		fmt.Println(diag.Error())
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	styleEngine := style.New()

	for _, file := range files {
		var lines []string
		if doFix {
			lines, err = fmtengine.FixFile(file)
			if err != nil {
				return err
			}
			fmt.Printf(msgLintComplete, file)
		} else {
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			lines = fmtengine.SplitLines(string(content))
		}

		// Lint the sequence currently in memory: the fixed lines when
		// fixing ran, the original lines otherwise.
		for _, finding := range styleEngine.LintLines(file, lines) {
			fmt.Printf("%s:%d: %s\n", finding.File, finding.Line, finding.Message)
		}
	}

	return nil
}
