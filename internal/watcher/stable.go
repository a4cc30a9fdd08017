package watcher

import (
	"context"
	"time"
)

// isStable waits for the stability window and reports whether the tree still
// matches fp, so that a save in progress is not copied half written.
func (w *Watcher) isStable(ctx context.Context, fp Fingerprint) bool {
	w.mu.RLock()
	stability := w.stability
	dir := w.dir
	w.mu.RUnlock()

	if stability > 0 {
		t := time.NewTimer(stability)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
		}
	}

	again, _, err := Scan(dir)
	if err != nil {
		return false
	}
	return again.Equal(fp)
}
