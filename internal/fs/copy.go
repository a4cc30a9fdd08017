package fs

import (
	"context"
	"errors"
	"io"
	"os"
)

// implements file copying with retry and source-change detection.
// A save file rewritten by the game while it is being copied is copied again.

// ErrSourceChanged is reported when the source was modified during a copy.
var ErrSourceChanged = errors.New("source changed during copy")

func copyWithRetry(ctx context.Context, f FS, src, dst string) error {
	return retry(ctx, "copy", func() error {
		before, err := f.Stat(src)
		if err != nil {
			return err
		}

		if err := copyOnce(src, dst, before.Mode.Perm()); err != nil {
			return err
		}

		after, err := f.Stat(src)
		if err != nil {
			return err
		}

		if sourceChanged(before, after) {
			return ErrSourceChanged
		}
		return nil
	})
}

func sourceChanged(orig, now FileInfo) bool {
	if now.Inode != 0 && orig.Inode != 0 && now.Inode != orig.Inode {
		return true
	}
	if now.MTime.After(orig.MTime) {
		return true
	}
	if now.Size != orig.Size {
		return true
	}
	return false
}

func copyOnce(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
