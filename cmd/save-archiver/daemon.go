package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raoulx24/save-archiver/internal/mailbox"
	"github.com/raoulx24/save-archiver/internal/schedule"
	"github.com/raoulx24/save-archiver/internal/watcher"
	"github.com/raoulx24/save-archiver/internal/worker"
)

func newDaemonCmd(opts *options) *cobra.Command {
	var backupOnStart bool

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Back up automatically on a schedule and when saves change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Mailbox for backup jobs
			mb := mailbox.New[worker.Job]()

			sched, err := schedule.New(a.cfg.Daemon.Schedule, a.log, mb)
			if err != nil {
				return err
			}

			w := worker.New(a.archiver, a.paths.Lock, a.log, mb)
			watch := watcher.New(a.paths.Live, a.cfg.Daemon.Watch, a.log, mb)

			if backupOnStart {
				mb.Put(worker.Job{Reason: worker.ReasonStartup, At: time.Now()})
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return w.Start(gctx) })
			g.Go(func() error { return watch.Start(gctx) })
			g.Go(func() error { return sched.Start(gctx) })

			a.log.Info("daemon running", "live", a.paths.Live, "backups", a.paths.Backups)
			err = g.Wait()

			runs, failures, last := w.Stats()
			a.log.Info("daemon stopped", "backups", runs, "failed", failures, "last", last.Session.ID)
			return err
		},
	}

	cmd.Flags().BoolVar(&backupOnStart, "backup-on-start", false, "take a backup as soon as the daemon starts")
	return cmd
}
