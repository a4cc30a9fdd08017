// Package worker runs backups requested through the mailbox, one at a time and
// under the run lock.
package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/raoulx24/save-archiver/internal/lock"
	"github.com/raoulx24/save-archiver/internal/logging"
	"github.com/raoulx24/save-archiver/internal/mailbox"
	"github.com/raoulx24/save-archiver/internal/snapshot"
)

// Backupper is the part of the archiver the worker drives.
type Backupper interface {
	Backup(ctx context.Context) (snapshot.Snapshot, error)
}

// Worker takes jobs from the mailbox and turns each into a backup.
type Worker struct {
	mu       sync.RWMutex
	archiver Backupper
	lockPath string
	log      logging.Logger
	mb       *mailbox.Mailbox[Job]

	runs     int
	failures int
	last     snapshot.Snapshot
}

// New creates a worker reading from mb.
func New(a Backupper, lockPath string, log logging.Logger, mb *mailbox.Mailbox[Job]) *Worker {
	log.Debug("creating worker", "lock", lockPath)
	return &Worker{
		archiver: a,
		lockPath: lockPath,
		log:      log,
		mb:       mb,
	}
}

// Handle runs one backup while holding the run lock.
func (w *Worker) Handle(ctx context.Context, job Job) error {
	w.log.Debug("handling job", "reason", job.Reason, "at", job.At)

	l, err := lock.Acquire(w.lockPath)
	if err != nil {
		w.record(snapshot.Snapshot{}, err)
		return fmt.Errorf("acquiring run lock: %w", err)
	}
	defer func() {
		if err := l.Release(); err != nil {
			w.log.Warn("releasing run lock", "error", err)
		}
	}()

	snap, err := w.archiver.Backup(ctx)
	w.record(snap, err)
	if err != nil {
		return fmt.Errorf("backup (%s): %w", job.Reason, err)
	}
	return nil
}

func (w *Worker) record(snap snapshot.Snapshot, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.runs++
	if err != nil {
		w.failures++
		return
	}
	w.last = snap
}

// Stats reports how many backups ran, how many failed, and the last success.
func (w *Worker) Stats() (runs, failures int, last snapshot.Snapshot) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.runs, w.failures, w.last
}
