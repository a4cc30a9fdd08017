package watcher

import (
	"path/filepath"
	"time"

	"github.com/raoulx24/save-archiver/internal/walk"
)

// Fingerprint is a cheap summary of a folder tree used to notice changes.
type Fingerprint struct {
	Files  int
	Bytes  int64
	Newest time.Time
}

// Equal reports whether both fingerprints describe the same tree state.
func (f Fingerprint) Equal(o Fingerprint) bool {
	return f.Files == o.Files && f.Bytes == o.Bytes && f.Newest.Equal(o.Newest)
}

// Scan fingerprints the tree below root and returns the directories that hold
// at least one file. Entries that vanish or cannot be read while the game is
// writing are left out rather than failing the scan.
func Scan(root string) (Fingerprint, []string, error) {
	wk, err := walk.New(root)
	if err != nil {
		return Fingerprint{}, nil, err
	}
	defer wk.Close()

	var fp Fingerprint
	seen := map[string]struct{}{wk.Root(): {}}
	dirs := []string{wk.Root()}

	for e, err := range wk.All() {
		if err != nil {
			continue
		}

		fp.Files++
		fp.Bytes += e.Info.Size()
		if mt := e.Info.ModTime(); mt.After(fp.Newest) {
			fp.Newest = mt
		}

		d := filepath.Dir(e.Path)
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			dirs = append(dirs, d)
		}
	}

	return fp, dirs, nil
}
