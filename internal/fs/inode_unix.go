//go:build unix

package fs

import (
	"os"
	"syscall"
)

// inodeOf reads the inode number from the stat result. A save file replaced
// by the game (write temp + rename) gets a new inode, which sourceChanged
// picks up even when size and mtime look the same.
func inodeOf(info os.FileInfo) uint64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0
	}
	return uint64(st.Ino) //nolint:unconvert // uint32 on some BSDs
}
