package watcher

import (
	"context"
)

// detect enqueues a backup if the live folder changed and has settled. It
// returns true when a change was seen but is still in progress.
func (w *Watcher) detect(ctx context.Context) bool {
	w.mu.RLock()
	dir := w.dir
	last := w.last
	w.mu.RUnlock()

	fp, _, err := Scan(dir)
	if err != nil {
		w.log.Debug("scan failed", "dir", dir, "error", err)
		return false
	}

	if fp.Equal(last) {
		return false
	}

	if !w.isStable(ctx, fp) {
		w.log.Debug("live folder still changing", "dir", dir)
		return ctx.Err() == nil
	}

	w.mu.Lock()
	w.last = fp
	w.mu.Unlock()

	w.enqueue(fp)
	return false
}
