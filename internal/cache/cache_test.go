package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutThenGetRoundTrips(t *testing.T) {
	c := New(t.TempDir())
	entry := Entry{
		Path:              "/abs/foo.go",
		Mode:              "structure",
		MtimeNS:           1000,
		OriginalTokens:    42,
		TransformedTokens: 10,
		Content:           []byte("package main\n"),
	}
	require.NoError(t, c.Put("/abs/foo.go", 1000, "structure", entry))

	got, ok := c.Get("/abs/foo.go", 1000, "structure")
	require.True(t, ok)
	assert.Equal(t, entry.Content, got.Content)
	assert.Equal(t, entry.OriginalTokens, got.OriginalTokens)
}

func TestGetMissingIsMiss(t *testing.T) {
	c := New(t.TempDir())
	_, ok := c.Get("/abs/nope.go", 1, "structure")
	assert.False(t, ok)
}

// A stale mtime (source changed since the entry was written) is a miss: the
// mtime is part of the key, so the key derived from the new mtime names no
// file, and the entry written under the old mtime is never consulted.
func TestStaleMtimeIsMiss(t *testing.T) {
	c := New(t.TempDir())
	require.NoError(t, c.Put("/abs/foo.go", 1000, "structure", Entry{MtimeNS: 1000, Content: []byte("a")}))

	_, ok := c.Get("/abs/foo.go", 2000, "structure")
	assert.False(t, ok)
}

// Distinct mode tags produce distinct keys, so both entries coexist.
func TestDifferentModesCoexist(t *testing.T) {
	c := New(t.TempDir())
	require.NoError(t, c.Put("/abs/foo.go", 1000, "structure", Entry{MtimeNS: 1000, Content: []byte("struct-out")}))
	require.NoError(t, c.Put("/abs/foo.go", 1000, "types", Entry{MtimeNS: 1000, Content: []byte("types-out")}))

	a, ok := c.Get("/abs/foo.go", 1000, "structure")
	require.True(t, ok)
	b, ok := c.Get("/abs/foo.go", 1000, "types")
	require.True(t, ok)
	assert.NotEqual(t, a.Content, b.Content)
}

func TestPutIsAtomicNoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	require.NoError(t, c.Put("/abs/foo.go", 1000, "structure", Entry{MtimeNS: 1000, Content: []byte("x")}))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestClearRemovesEntries(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	require.NoError(t, c.Put("/abs/foo.go", 1000, "structure", Entry{MtimeNS: 1000, Content: []byte("x")}))
	require.NoError(t, c.Clear())

	_, ok := c.Get("/abs/foo.go", 1000, "structure")
	assert.False(t, ok)
}

func TestGetCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	require.NoError(t, c.Put("/abs/foo.go", 1000, "structure", Entry{MtimeNS: 1000, Content: []byte("x")}))

	p, err := entryPath(dir, "/abs/foo.go", 1000, "structure")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p, []byte("not json"), 0o600))

	_, ok := c.Get("/abs/foo.go", 1000, "structure")
	assert.False(t, ok)
}
