// Package walk lists every non-directory entry below a root directory.
// The walk is lazy and depth-first: subdirectories are not visited when found,
// they are pushed onto a pending stack and opened once the current directory
// is exhausted. At most one directory handle is open at any time.
package walk

import (
	"errors"
	"io/fs"
	"os"
)

// Done is returned by Walker.Next when there are no more entries.
var Done = errors.New("walk: no more entries")

// ErrNotDir is reported when the walk root exists but is not a directory.
var ErrNotDir = errors.New("not a directory")

const defaultBatchSize = 128

// Entry is a file (or any non-directory object) found during the walk.
type Entry struct {
	// Path is the entry's directory joined with its name. It always starts
	// with the walker's root.
	Path string
	// Info comes from lstat, so symlinks are reported as symlinks.
	Info fs.FileInfo
}

// Name returns the base name of the entry.
func (e Entry) Name() string {
	return e.Info.Name()
}

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool {
	return e.Info.Mode().IsRegular()
}

// Option configures a Walker.
type Option func(*Walker)

// WithBatchSize sets how many directory entries are read per system call.
func WithBatchSize(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.batch = n
		}
	}
}

// dirReader is the part of *os.File the walker needs to list a directory.
type dirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

func openDir(path string) (dirReader, error) {
	return os.Open(path)
}

func entryInfo(d fs.DirEntry) (fs.FileInfo, error) {
	return d.Info()
}
