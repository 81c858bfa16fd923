package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/nsp/pkg/types"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory in the specified parent directory.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// WriteTree creates files under root on fsys. Keys are slash separated
// relative paths; a key ending in "/" creates an empty directory.
func WriteTree(t *testing.T, fsys types.FS, root string, tree map[string]string) {
	t.Helper()

	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", root, err)
	}
	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := fsys.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}

// ReadTree returns every file under root keyed by slash separated relative
// path. Directories are included with a trailing "/" and empty content.
func ReadTree(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()

	tree := make(map[string]string)
	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", dir, err)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			key := entry.Name()
			if rel != "" {
				key = rel + "/" + entry.Name()
			}
			if entry.IsDir() {
				tree[key+"/"] = ""
				walk(path, key)
				continue
			}
			data, err := fsys.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read %s: %v", path, err)
			}
			tree[key] = string(data)
		}
	}
	walk(root, "")
	return tree
}

// TreeFiles lists the file keys of a ReadTree result, sorted
func TreeFiles(tree map[string]string) []string {
	var files []string
	for k := range tree {
		if !strings.HasSuffix(k, "/") {
			files = append(files, k)
		}
	}
	sort.Strings(files)
	return files
}

// AssertMode fails the test if path's permission bits differ from want
func AssertMode(t *testing.T, fsys types.FS, path string, want fs.FileMode) {
	t.Helper()

	info, err := fsys.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if got := info.Mode().Perm(); got != want {
		t.Errorf("mode of %s = %v, want %v", path, got, want)
	}
}
