package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/save-archiver/internal/reroot"
	"github.com/raoulx24/save-archiver/internal/session"
	"github.com/raoulx24/save-archiver/internal/walk"
)

func TestSnapshot_Accumulates(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(session.Session{ID: 1000000, Path: "/b/1000000"}, start)

	s.Add(Artifact{Size: 10})
	s.Add(Artifact{Size: 5})
	s.Skip()

	assert.Equal(t, 2, s.Files)
	assert.Equal(t, int64(15), s.Bytes)
	assert.Equal(t, 1, s.Skipped)
	assert.Zero(t, s.Duration())

	s.Finish(start.Add(1500 * time.Millisecond))
	assert.Equal(t, 1500*time.Millisecond, s.Duration())
}

func TestFromEntry(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "map.bin"), []byte("abcdef"), 0o644))

	w, err := walk.New(root)
	require.NoError(t, err)
	e, err := w.Next()
	require.NoError(t, err)

	m := reroot.Mapping{Source: e.Path, Destination: "/dst/map.bin"}
	a := FromEntry(m, e)

	assert.Equal(t, e.Path, a.Source)
	assert.Equal(t, "/dst/map.bin", a.Destination)
	assert.Equal(t, int64(6), a.Size)
	assert.Equal(t, e.Info.ModTime(), a.ModTime)
}
