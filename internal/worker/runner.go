package worker

import (
	"context"
	"errors"
)

// Start pulls jobs from the mailbox until ctx ends. A failed backup is logged
// and the loop carries on with the next job.
func (w *Worker) Start(ctx context.Context) error {
	w.log.Info("starting worker")
	for {
		job, err := w.mb.Take(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.log.Info("worker stopped")
				return nil
			}
			return err
		}

		if err := w.Handle(ctx, job); err != nil {
			w.log.Error("worker: backup failed", "reason", job.Reason, "error", err)
		}
	}
}
