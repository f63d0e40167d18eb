package renamer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRenameFreeTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan001.pdf")
	writeFile(t, src, "content")

	c := New(StrategyVersion)
	got, err := c.Rename(src, "Invoice_Acme_2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Invoice_Acme_2024-03-05.pdf"), got)
	assert.FileExists(t, got)
	assert.NoFileExists(t, src)
}

func TestRenamePreservesExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.TXT")
	writeFile(t, src, "x")

	c := New(StrategyVersion)
	got, err := c.Rename(src, "Report_2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, ".TXT", filepath.Ext(got))
}

func TestRenameMissingSource(t *testing.T) {
	c := New(StrategyVersion)

	_, err := c.Rename(filepath.Join(t.TempDir(), "gone.pdf"), "name")

	require.Error(t, err)
}

func TestVersionStrategyMonotonic(t *testing.T) {
	dir := t.TempDir()

	// Pre-existing occupant of the target name.
	occupant := filepath.Join(dir, "report.pdf")
	writeFile(t, occupant, "original")

	c := New(StrategyVersion)

	first := filepath.Join(dir, "a.pdf")
	writeFile(t, first, "a")
	got, err := c.Rename(first, "report")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_v2.pdf"), got)

	second := filepath.Join(dir, "b.pdf")
	writeFile(t, second, "b")
	got, err = c.Rename(second, "report")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_v3.pdf"), got)

	// The occupant is never overwritten.
	data, err := os.ReadFile(occupant)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestVersionStrategyManyCollisions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.txt"), "occupant")

	c := New(StrategyVersion)

	var got []string
	for i := 0; i < 5; i++ {
		src := filepath.Join(dir, "src"+string(rune('a'+i))+".txt")
		writeFile(t, src, "x")
		path, err := c.Rename(src, "doc")
		require.NoError(t, err)
		got = append(got, path)
	}

	// All distinct, all extant.
	seen := make(map[string]bool)
	for _, path := range got {
		assert.False(t, seen[path])
		seen[path] = true
		assert.FileExists(t, path)
	}
}

func TestTimestampStrategy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.txt"), "occupant")

	clock := func() time.Time {
		return time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	}
	c := New(StrategyTimestamp, WithClock(clock))

	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "a")
	got, err := c.Rename(src, "doc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "doc_20240305_143000.txt"), got)

	// Same-second collision is the documented race; it surfaces as an
	// error rather than an overwrite.
	src2 := filepath.Join(dir, "b.txt")
	writeFile(t, src2, "b")
	_, err = c.Rename(src2, "doc")
	require.ErrorIs(t, err, ErrTargetOccupied)
	assert.FileExists(t, src2)
}

func TestHashStrategy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.txt"), "occupant")

	c := New(StrategyHash)

	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "a")
	got, err := c.Rename(src, "doc")
	require.NoError(t, err)

	// Suffix depends only on the candidate base name.
	assert.Regexp(t, `doc_[0-9a-f]{8}\.txt$`, got)

	// The same base name hashes identically, so a second collision
	// errors instead of overwriting.
	src2 := filepath.Join(dir, "b.txt")
	writeFile(t, src2, "b")
	_, err = c.Rename(src2, "doc")
	require.ErrorIs(t, err, ErrTargetOccupied)
}

func TestPreviewDoesNotMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan.pdf")
	writeFile(t, src, "x")

	c := New(StrategyVersion, WithPreview(true))
	got, err := c.Rename(src, "Invoice_2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Invoice_2024-01-01.pdf"), got)
	assert.FileExists(t, src)
	assert.NoFileExists(t, got)
}
