// Package main provides the fix command for ctidy.
package main

import (
	"context"
	"fmt"

	"github.com/santosr2/ctidy/internal/config"
	fmtengine "github.com/santosr2/ctidy/internal/engines/format"
	"github.com/santosr2/ctidy/internal/engines/style"
	"github.com/santosr2/ctidy/pkg/sdk"
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Auto-fix pointer spacing and brace placement",
	Long: `Rewrite .c/.h files in place: pointer declarations are normalized and
braces are moved onto their own lines, then the files are re-linted so
anything the rewriter could not express is still reported.

Use --changed to only fix files that have been modified in git.`,
	Example: `  # Fix all files
  ctidy fix

  # Fix specific paths
  ctidy fix src/

  # Only fix changed files (git)
  ctidy fix --changed`,
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func runFix(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	files, err := getTargetFiles(args, changed)
	if err != nil {
		return fmt.Errorf("finding files: %w", err)
	}
	files = filterSkipped(files, cfg.SkipDirs)

	if len(files) == 0 {
		fmt.Println("No C files found")
		return nil
	}

	printFixHeader(len(files))

	remaining, fixed, err := runAllFixes(files)
	if err != nil {
		return err
	}

	printFixSummary(remaining, fixed)
	return nil
}

func printFixHeader(fileCount int) {
	modeMsg := ""
	if changed {
		modeMsg = " (changed files only)"
	}
	fmt.Printf("Fixing %s%s...\n\n", formatFileCount(fileCount), modeMsg)
}

// runAllFixes rewrites every file and lints the rewritten line sequences.
// It returns the findings that survived fixing plus the number of files
// that were rewritten.
func runAllFixes(files []string) ([]sdk.Finding, int, error) {
	ctx := context.Background()

	fmt.Println("1. Rewriting files...")
	fmtEngine := fmtengine.New(&fmtengine.Config{Check: false})
	fmtFindings, err := fmtEngine.Run(ctx, files)
	if err != nil {
		return nil, 0, fmt.Errorf("rewriting failed: %w", err)
	}
	rewritten := len(fmtFindings)
	fmt.Printf("   Rewrote %d file(s)\n\n", rewritten)

	fmt.Println("2. Re-linting...")
	styleEngine := style.New()
	remaining, err := styleEngine.Run(ctx, files)
	if err != nil {
		return nil, 0, fmt.Errorf("re-lint failed: %w", err)
	}
	fmt.Printf("   Found %d remaining issue(s)\n\n", len(remaining))

	return remaining, rewritten, nil
}

func printFixSummary(remaining []sdk.Finding, fixed int) {
	fmt.Println("---")
	fmt.Printf("Summary: Rewrote %d file(s)\n", fixed)

	if len(remaining) > 0 {
		fmt.Printf("\n%d issue(s) require manual attention\n", len(remaining))
		fmt.Println("\nRun 'ctidy lint' to see remaining issues")
	} else {
		fmt.Println("\nAll fixable issues resolved!")
	}
}
