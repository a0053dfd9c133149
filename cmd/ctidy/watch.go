// Package main provides the watch command for ctidy.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	fmtengine "github.com/santosr2/ctidy/internal/engines/format"
	"github.com/santosr2/ctidy/internal/engines/style"
	"github.com/santosr2/ctidy/pkg/sdk"
	"github.com/spf13/cobra"
)

var watchTarget string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously lint on file changes",
	Long: `Watch a directory tree and re-run the style checks whenever a .c or .h
file is written. Useful while editing: violations show up as you save.`,
	Example: `  # Watch the current directory
  ctidy watch

  # Watch a specific directory
  ctidy watch --target ./src`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchTarget, "target", ".", "directory to watch and lint")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	fmt.Println("Starting watch mode...")
	fmt.Printf("  Target: %s\n", watchTarget)
	fmt.Println()

	if _, err := os.Stat(watchTarget); os.IsNotExist(err) {
		return fmt.Errorf("target directory does not exist: %s", watchTarget)
	}

	targetFiles, err := getTargetFiles([]string{watchTarget}, false)
	if err != nil {
		return fmt.Errorf("finding target files: %w", err)
	}

	if len(targetFiles) == 0 {
		return fmt.Errorf("no C files found in target directory: %s", watchTarget)
	}

	fmt.Printf("Found %d target file(s)\n", len(targetFiles))
	fmt.Println()

	// Run initial check
	if err := runWatchCheck(targetFiles); err != nil {
		fmt.Printf("Initial check error: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory and subdirectories
	err = filepath.Walk(watchTarget, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("setting up watch: %w", err)
	}

	fmt.Println("Watching for changes... (Ctrl+C to stop)")
	fmt.Println()

	// Debounce timer
	var debounceTimer *time.Timer
	debounceDelay := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only react to write and create events
			if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 {
				continue
			}

			if !fmtengine.IsCFile(event.Name) {
				continue
			}

			// Debounce multiple rapid events
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				fmt.Printf("\n[%s] File changed: %s\n\n", time.Now().Format("15:04:05"), event.Name)

				// Refresh target files in case new files were added
				refreshedFiles, err := getTargetFiles([]string{watchTarget}, false)
				if err != nil {
					fmt.Printf("Error refreshing files: %v\n", err)
					return
				}

				if err := runWatchCheck(refreshedFiles); err != nil {
					fmt.Printf("Check error: %v\n", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

func runWatchCheck(targetFiles []string) error {
	fmt.Printf("Linting %d file(s)...\n\n", len(targetFiles))

	engine := style.New()
	findings, err := engine.Run(context.Background(), targetFiles)
	if err != nil {
		return fmt.Errorf("running checks: %w", err)
	}

	if len(findings) == 0 {
		fmt.Println("  No issues found")
		fmt.Println()
		return nil
	}

	for _, finding := range findings {
		fmt.Printf("  %s:%d: %s (%s)\n", finding.File, finding.Line, finding.Message, finding.Rule)
	}

	var warnings, info int
	errors := 0
	for _, f := range findings {
		switch f.Severity {
		case sdk.SeverityError:
			errors++
		case sdk.SeverityWarning:
			warnings++
		case sdk.SeverityInfo:
			info++
		}
	}

	fmt.Printf("\n---\n")
	fmt.Printf("Summary: %d error(s), %d warning(s), %d info\n", errors, warnings, info)
	fmt.Println()

	return nil
}
