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

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run all checks without modifying files",
	Long: `Run the fix engine in check mode plus the style checks. Nothing is
written to disk. This is the recommended command for CI/CD: the exit code
reflects whether findings meet the severity threshold.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
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

	fmt.Printf("🔍 Checking %d file(s)...\n\n", len(files))

	ctx := context.Background()
	var allFindings []sdk.Finding
	var fmtFindings, styleFindings []sdk.Finding

	// 1. Would the fix engine rewrite anything?
	if cfg.Engines.Fmt.Enabled {
		fmt.Println("1️⃣  Checking formatting...")
		fmtEngine := fmtengine.New(&fmtengine.Config{Check: true})
		fmtFindings, err = fmtEngine.Run(ctx, files)
		if err != nil {
			return fmt.Errorf("fmt check failed: %w", err)
		}
		allFindings = append(allFindings, fmtFindings...)
		fmt.Printf("   Found %d issue(s)\n\n", len(fmtFindings))
	}

	// 2. Run style checks
	if cfg.Engines.Style.Enabled {
		fmt.Println("2️⃣  Checking style...")
		styleEngine := style.New()
		styleFindings, err = styleEngine.Run(ctx, files)
		if err != nil {
			return fmt.Errorf("style check failed: %w", err)
		}
		allFindings = append(allFindings, styleFindings...)
		fmt.Printf("   Found %d issue(s)\n\n", len(styleFindings))
	}

	// Display summary
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("📊 Summary: %d total issue(s)\n", len(allFindings))
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if len(allFindings) == 0 {
		fmt.Println("✅ All checks passed!")
		return nil
	}

	errors := 0
	warnings := 0
	info := 0
	for _, finding := range allFindings {
		switch finding.Severity {
		case sdk.SeverityError:
			errors++
		case sdk.SeverityWarning:
			warnings++
		case sdk.SeverityInfo:
			info++
		}
	}

	fmt.Printf("\n")
	if errors > 0 {
		fmt.Printf("❌ Errors:   %d\n", errors)
	}
	if warnings > 0 {
		fmt.Printf("⚠️  Warnings: %d\n", warnings)
	}
	if info > 0 {
		fmt.Printf("ℹ️  Info:     %d\n", info)
	}

	fmt.Println("\nRun individual commands for details:")
	if len(fmtFindings) > 0 {
		fmt.Println("  ctidy fix")
	}
	if len(styleFindings) > 0 {
		fmt.Println("  ctidy lint")
	}

	threshold := severityThreshold
	if threshold == "" {
		threshold = cfg.SeverityThreshold
	}
	if failed := countAtOrAbove(allFindings, threshold); failed > 0 {
		return fmt.Errorf("checks failed with %d issue(s) at or above severity %q", failed, threshold)
	}

	return nil
}

// countAtOrAbove counts findings whose severity meets the threshold.
// An empty or unknown threshold fails on errors only.
func countAtOrAbove(findings []sdk.Finding, threshold string) int {
	level := severityLevel(threshold)
	if level == 0 {
		level = severityLevel("error")
	}

	count := 0
	for _, f := range findings {
		if severityLevel(string(f.Severity)) >= level {
			count++
		}
	}
	return count
}
