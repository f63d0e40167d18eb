package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "skip.jpg"))
	touch(t, filepath.Join(dir, "sub", "c.docx"))

	s := New([]string{".pdf", ".txt", ".docx"}, true)
	got, err := s.Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "c.docx"),
	}, got)
}

func TestScanNonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "sub", "b.txt"))

	s := New([]string{".txt"}, false)
	got, err := s.Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, got)
}

func TestScanExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "UPPER.PDF"))

	s := New([]string{".pdf"}, true)
	got, err := s.Scan(dir)
	require.NoError(t, err)

	assert.Len(t, got, 1)
}

func TestScanMissingFolder(t *testing.T) {
	s := New([]string{".txt"}, true)

	_, err := s.Scan(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "folder not found")
}

func TestScanNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	touch(t, file)

	s := New([]string{".txt"}, true)
	_, err := s.Scan(file)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
