package main

import (
	"context"
	"fmt"
	"os"

	"github.com/santosr2/ctidy/internal/config"
	"github.com/santosr2/ctidy/internal/engines/style"
	"github.com/santosr2/ctidy/internal/output"
	"github.com/spf13/cobra"
)

var lintVerbose bool

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Run style checks without modifying files",
	Long: `Check .c/.h files against the brace-placement and pointer-spacing rules
and report every violation. Files are never modified.

Use --changed to only lint files that have been modified in git.`,
	Example: `  # Lint the current directory tree
  ctidy lint

  # Lint specific paths
  ctidy lint src/ include/

  # Machine-readable output
  ctidy lint --format json`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintVerbose, "verbose", false, "include rule IDs and severity icons")
	rootCmd.AddCommand(lintCmd)
}

func runLint(_ *cobra.Command, args []string) error {
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

	engine := style.New()
	findings, err := engine.Run(context.Background(), files)
	if err != nil {
		return fmt.Errorf("running linter: %w", err)
	}

	formatter, err := output.GetFormatter(resolveFormat(format, cfg.Format), lintVerbose, version)
	if err != nil {
		return err
	}

	return formatter.Format(findings, os.Stdout)
}
