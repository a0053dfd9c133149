// Package vcs provides version control system integration.
// It supports detecting changed files for incremental checks.
package vcs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Git provides Git-specific VCS operations
type Git struct {
	workDir string
}

// NewGit creates a new Git VCS instance
func NewGit(workDir string) *Git {
	if workDir == "" {
		workDir = "."
	}
	return &Git{workDir: workDir}
}

// IsGitRepo checks if the working directory is inside a Git repository
func (g *Git) IsGitRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = g.workDir
	return cmd.Run() == nil
}

// GetRepoRoot returns the root directory of the Git repository
func (g *Git) GetRepoRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = g.workDir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("getting repo root: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// GetStagedFiles returns files that are staged for commit
func (g *Git) GetStagedFiles() ([]string, error) {
	cmd := exec.Command("git", "diff", "--name-only", "--cached")
	cmd.Dir = g.workDir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("getting staged files: %w", err)
	}
	return g.parseFileList(out)
}

// GetUnstagedFiles returns files that have unstaged changes
func (g *Git) GetUnstagedFiles() ([]string, error) {
	cmd := exec.Command("git", "diff", "--name-only")
	cmd.Dir = g.workDir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("getting unstaged files: %w", err)
	}
	return g.parseFileList(out)
}

// GetUntrackedFiles returns untracked files
func (g *Git) GetUntrackedFiles() ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--others", "--exclude-standard")
	cmd.Dir = g.workDir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("getting untracked files: %w", err)
	}
	return g.parseFileList(out)
}

// GetAllChanges returns all changed, staged, and untracked files
func (g *Git) GetAllChanges() ([]string, error) {
	files := make(map[string]bool)

	// Staged
	staged, err := g.GetStagedFiles()
	if err == nil {
		for _, f := range staged {
			files[f] = true
		}
	}

	// Unstaged
	unstaged, err := g.GetUnstagedFiles()
	if err == nil {
		for _, f := range unstaged {
			files[f] = true
		}
	}

	// Untracked
	untracked, err := g.GetUntrackedFiles()
	if err == nil {
		for _, f := range untracked {
			files[f] = true
		}
	}

	result := make([]string, 0, len(files))
	for f := range files {
		result = append(result, f)
	}
	return result, nil
}

// GetAllChangedCFiles returns all changed .c/.h files (including staged/unstaged)
func (g *Git) GetAllChangedCFiles() ([]string, error) {
	files, err := g.GetAllChanges()
	if err != nil {
		return nil, err
	}
	return g.filterCFiles(files), nil
}

// filterCFiles filters a list to only include C source and header files
func (g *Git) filterCFiles(files []string) []string {
	var result []string
	for _, f := range files {
		ext := filepath.Ext(f)
		if ext == ".c" || ext == ".h" {
			result = append(result, f)
		}
	}
	return result
}

// parseFileList parses git output into a list of files
func (g *Git) parseFileList(out []byte) ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			// Make paths absolute
			if !filepath.IsAbs(line) {
				repoRoot, err := g.GetRepoRoot()
				if err == nil {
					line = filepath.Join(repoRoot, line)
				}
			}
			files = append(files, line)
		}
	}
	return files, scanner.Err()
}

// FilterExisting removes files from the list that no longer exist on disk
func FilterExisting(files []string) []string {
	var result []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			result = append(result, f)
		}
	}
	return result
}
