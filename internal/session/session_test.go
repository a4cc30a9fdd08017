package session

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSessions(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
	return root
}

func TestID_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 9, 12, 30, 45, 123_000_000, time.UTC)

	id := NewID(ts)
	assert.Equal(t, ID(ts.UnixMilli()), id)
	assert.Equal(t, strconv.FormatInt(ts.UnixMilli(), 10), id.String())
	assert.True(t, id.Time().Equal(ts))

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestNewID_BeforeEpoch(t *testing.T) {
	assert.Equal(t, ID(0), NewID(time.Unix(-10, 0)))
}

func TestParseID_Invalid(t *testing.T) {
	for _, name := range []string{"", "abc", "-1", "+5", "12.5", " 7", "1e3", "99999999999999999999999"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseID(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidName)

			var ne *NameError
			require.ErrorAs(t, err, &ne)
			assert.Equal(t, name, ne.Name)
		})
	}
}

func TestList_SortsOldestFirst(t *testing.T) {
	root := makeSessions(t, "100", "300", "200")

	sessions, err := List(root)
	require.NoError(t, err)

	require.Len(t, sessions, 3)
	assert.Equal(t, []ID{100, 200, 300}, []ID{sessions[0].ID, sessions[1].ID, sessions[2].ID})
	assert.Equal(t, filepath.Join(root, "200"), sessions[1].Path)
	assert.Equal(t, "200", sessions[1].Name())
}

func TestList_SortsNumerically(t *testing.T) {
	root := makeSessions(t, "9", "10", "1700000000000", "100")

	sessions, err := List(root)
	require.NoError(t, err)

	var names []string
	for _, s := range sessions {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"9", "10", "100", "1700000000000"}, names)
}

func TestList_IgnoresFiles(t *testing.T) {
	root := makeSessions(t, "100")
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	sessions, err := List(root)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, ID(100), sessions[0].ID)
}

func TestList_RejectsNonNumericDirectory(t *testing.T) {
	root := makeSessions(t, "100", "old-stuff")

	_, err := List(root)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestList_MissingRoot(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList_Empty(t *testing.T) {
	sessions, err := List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestIndex(t *testing.T) {
	tests := []struct {
		n, length int
		want      int
		wantErr   bool
	}{
		{n: 0, length: 3, want: 0},
		{n: 2, length: 3, want: 2},
		{n: -1, length: 3, want: 2},
		{n: -3, length: 3, want: 0},
		{n: 3, length: 3, wantErr: true},
		{n: -4, length: 3, wantErr: true},
		{n: 0, length: 0, wantErr: true},
		{n: -1, length: 0, wantErr: true},
		{n: math.MinInt, length: 3, wantErr: true},
		{n: math.MaxInt, length: 3, wantErr: true},
		{n: math.MinInt32, length: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n)+"/"+strconv.Itoa(tt.length), func(t *testing.T) {
			got, err := Index(tt.n, tt.length)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	root := makeSessions(t, "100", "300", "200")

	newest, err := Resolve(root, -1)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "300"), newest.Path)
	assert.Equal(t, ID(300), newest.ID)

	oldest, err := Resolve(root, 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "100"), oldest.Path)

	second, err := Resolve(root, -2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "200"), second.Path)

	_, err = Resolve(root, -4)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Resolve(root, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestResolve_PropagatesNameErrors(t *testing.T) {
	root := makeSessions(t, "100", "backup-copy")

	_, err := Resolve(root, -1)
	assert.ErrorIs(t, err, ErrInvalidName)
}
