package watcher

import (
	"time"

	"github.com/raoulx24/save-archiver/internal/worker"
)

// enqueue submits a backup job for a settled change.
func (w *Watcher) enqueue(fp Fingerprint) {
	w.mb.Put(worker.Job{
		Reason: worker.ReasonChange,
		At:     time.Now(),
	})
	w.log.Info("change detected, backup queued", "files", fp.Files, "bytes", fp.Bytes, "newest", fp.Newest)
}
