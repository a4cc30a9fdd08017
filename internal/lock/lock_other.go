//go:build !(linux || darwin || freebsd || openbsd || netbsd || dragonfly || windows)

package lock

import "os"

// No advisory locking primitive is wired for this platform; the lock file
// still records the PID of the last holder.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
