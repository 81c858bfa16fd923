package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteAndReadTree(t *testing.T) {
	fsys := NewTestFS()
	WriteTree(t, fsys, "/tpl", map[string]string{
		"a/b.txt":  "hello",
		"root.txt": "root",
		"empty/":   "",
	})

	tree := ReadTree(t, fsys, "/tpl")
	assert.Equal(t, map[string]string{
		"a/":       "",
		"a/b.txt":  "hello",
		"empty/":   "",
		"root.txt": "root",
	}, tree)
	assert.Equal(t, []string{"a/b.txt", "root.txt"}, TreeFiles(tree))
}

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()
	path := CreateFile(t, dir, "nested/file.txt", "x")
	assert.FileExists(t, path)
	assert.DirExists(t, CreateDir(t, dir, "other"))
}
