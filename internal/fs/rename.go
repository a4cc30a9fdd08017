package fs

import (
	"context"
	"os"
)

// wraps os.Rename with retry logic.
// Restore uses it to move the live folder aside before copying a session back.

func renameWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
