// Package fs defines the filesystem abstraction used by save-archiver.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"os"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	Mode  os.FileMode
	MTime time.Time
	Inode uint64
}

// IsDir reports whether the path is a directory.
func (fi FileInfo) IsDir() bool {
	return fi.Mode.IsDir()
}

type FS interface {
	Stat(path string) (FileInfo, error)
	CopyFile(ctx context.Context, src, dst string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Mkdir(path string) error
	MkdirAll(path string) error
	RemoveAll(path string) error
}
