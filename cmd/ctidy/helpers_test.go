package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCFiles(t *testing.T) {
	tmpDir := t.TempDir()

	// A small tree: C files at two depths plus files that must be ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0o755))
	for name, content := range map[string]string{
		"a.c":        "int x;\n",
		"b.txt":      "not C\n",
		"sub/c.h":    "void f(void);\n",
		"sub/d.md":   "# docs\n",
		"sub/e.C":    "int y;\n",
		"Makefile.h": "ok, still a header by extension\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0o644))
	}

	files, err := findCFiles([]string{tmpDir})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(tmpDir, f)
		require.NoError(t, err)
		names = append(names, rel)
	}

	assert.ElementsMatch(t, []string{"a.c", "Makefile.h", filepath.Join("sub", "c.h")}, names)
}

func TestFindCFiles_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "only.c")
	require.NoError(t, os.WriteFile(file, []byte("int x;\n"), 0o644))

	files, err := findCFiles([]string{file})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindCFiles_DeduplicatesPaths(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "dup.c")
	require.NoError(t, os.WriteFile(file, []byte("int x;\n"), 0o644))

	files, err := findCFiles([]string{file, file})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindCFiles_MissingPath(t *testing.T) {
	_, err := findCFiles([]string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestIsPathWithin(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		dirPath  string
		want     bool
	}{
		{"file in dir", "/repo/src/main.c", "/repo/src", true},
		{"file is the dir", "/repo/src", "/repo/src", true},
		{"file outside dir", "/repo/docs/readme.md", "/repo/src", false},
		{"prefix but not within", "/repo/src-old/main.c", "/repo/src", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPathWithin(tt.filePath, tt.dirPath))
		})
	}
}

func TestFilterSkipped(t *testing.T) {
	files := []string{
		filepath.Join("src", "main.c"),
		filepath.Join("build", "gen.c"),
		filepath.Join("src", "build", "gen.h"),
		filepath.Join("include", "util.h"),
	}

	got := filterSkipped(files, []string{"build"})
	assert.Equal(t, []string{
		filepath.Join("src", "main.c"),
		filepath.Join("include", "util.h"),
	}, got)

	// No skip dirs means no filtering
	assert.Equal(t, files, filterSkipped(files, nil))
}

func TestFormatFileCount(t *testing.T) {
	assert.Equal(t, "1 file", formatFileCount(1))
	assert.Equal(t, "0 files", formatFileCount(0))
	assert.Equal(t, "5 files", formatFileCount(5))
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, "json", resolveFormat("json", "sarif"))
	assert.Equal(t, "sarif", resolveFormat("", "sarif"))
	assert.Equal(t, "text", resolveFormat("", ""))
}

func TestSeverityLevel(t *testing.T) {
	assert.Equal(t, 1, severityLevel("info"))
	assert.Equal(t, 2, severityLevel("warning"))
	assert.Equal(t, 3, severityLevel("error"))
	assert.Equal(t, 3, severityLevel("ERROR"))
	assert.Equal(t, 0, severityLevel("bogus"))
}
