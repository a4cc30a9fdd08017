//go:build windows

package fs

import "os"

// Windows has no POSIX inode in the stat result; zero disables the inode
// comparison and sourceChanged falls back to size and mtime.
func inodeOf(os.FileInfo) uint64 {
	return 0
}
