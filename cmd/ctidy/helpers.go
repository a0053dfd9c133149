// Package main provides CLI helpers for ctidy commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fmtengine "github.com/santosr2/ctidy/internal/engines/format"
	"github.com/santosr2/ctidy/internal/vcs"
)

// getTargetFiles returns the list of files to process based on the provided
// paths and global flags. When --changed is set, it uses VCS to detect
// changed files.
func getTargetFiles(paths []string, changedOnly bool) ([]string, error) {
	if changedOnly {
		return getChangedFiles(paths)
	}
	return findCFilesFromPaths(paths)
}

// getChangedFiles uses VCS to get only changed C files. If paths are
// provided, it filters the changed files to only those within the paths.
func getChangedFiles(filterPaths []string) ([]string, error) {
	git := vcs.NewGit(".")

	if !git.IsGitRepo() {
		return nil, fmt.Errorf("not a git repository; --changed requires git")
	}

	changedFiles, err := git.GetAllChangedCFiles()
	if err != nil {
		return nil, fmt.Errorf("getting changed files: %w", err)
	}

	// If no filter paths provided, return all changed files
	if len(filterPaths) == 0 || (len(filterPaths) == 1 && filterPaths[0] == ".") {
		return vcs.FilterExisting(changedFiles), nil
	}

	var filteredFiles []string
	for _, file := range changedFiles {
		for _, filterPath := range filterPaths {
			absFilterPath, err := filepath.Abs(filterPath)
			if err != nil {
				continue
			}

			if isPathWithin(file, absFilterPath) {
				filteredFiles = append(filteredFiles, file)
				break
			}
		}
	}

	return vcs.FilterExisting(filteredFiles), nil
}

// isPathWithin checks if a file path is within a directory path.
func isPathWithin(filePath, dirPath string) bool {
	filePath = filepath.Clean(filePath)
	dirPath = filepath.Clean(dirPath)

	if strings.HasPrefix(filePath, dirPath) {
		// Make sure it's actually within (not just a prefix match)
		remainder := strings.TrimPrefix(filePath, dirPath)
		return remainder == "" || strings.HasPrefix(remainder, string(filepath.Separator))
	}
	return false
}

// findCFilesFromPaths is a helper that handles default paths and delegates
// to findCFiles.
func findCFilesFromPaths(paths []string) ([]string, error) {
	targetPaths := paths
	if len(targetPaths) == 0 {
		targetPaths = []string{"."}
	}
	return findCFiles(targetPaths)
}

// findCFiles recursively finds all .c and .h files in the given paths.
// Files are returned in the order the walk yields them, unsorted, with the
// paths as given (not absolutized): diagnostics should print the path the
// user asked about.
func findCFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && fmtengine.IsCFile(p) && !seen[p] {
					files = append(files, p)
					seen[p] = true
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", path, err)
			}
		} else if fmtengine.IsCFile(path) && !seen[path] {
			files = append(files, path)
			seen[path] = true
		}
	}

	return files, nil
}

// filterSkipped removes files that live under any of the configured skip
// directories. Matching is by path segment, so "build" skips ./build and
// src/build alike.
func filterSkipped(files []string, skipDirs []string) []string {
	if len(skipDirs) == 0 {
		return files
	}

	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = true
	}

	var result []string
	for _, f := range files {
		skipped := false
		for _, seg := range strings.Split(filepath.Dir(f), string(filepath.Separator)) {
			if skip[seg] {
				skipped = true
				break
			}
		}
		if !skipped {
			result = append(result, f)
		}
	}
	return result
}

// formatFileCount returns a human-readable file count string.
func formatFileCount(count int) string {
	if count == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", count)
}

// resolveFormat picks the output format: the flag wins, then the config
// file, then plain text.
func resolveFormat(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return "text"
}

// severityLevel converts severity string to a numeric level for comparison.
func severityLevel(severity string) int {
	switch strings.ToLower(severity) {
	case "info":
		return 1
	case "warning":
		return 2
	case "error":
		return 3
	default:
		return 0
	}
}
