// Package watcher monitors the live save folder and requests a backup once a
// change has settled.
package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/raoulx24/save-archiver/internal/config"
	"github.com/raoulx24/save-archiver/internal/fsprobe"
	"github.com/raoulx24/save-archiver/internal/logging"
	"github.com/raoulx24/save-archiver/internal/mailbox"
	"github.com/raoulx24/save-archiver/internal/worker"
)

const defaultPollInterval = 30 * time.Second

// Watcher observes the live folder and enqueues backups when it changes.
type Watcher struct {
	mu sync.RWMutex

	dir       string
	interval  time.Duration
	mode      string
	debounce  time.Duration
	stability time.Duration

	log logging.Logger

	last Fingerprint

	mb *mailbox.Mailbox[worker.Job]
}

// New creates a watcher for the live folder dir.
func New(dir string, cfg config.WatchConfig, log logging.Logger, mb *mailbox.Mailbox[worker.Job]) *Watcher {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Watcher{
		dir:       dir,
		interval:  interval,
		mode:      cfg.Mode,
		debounce:  cfg.DebounceWindow,
		stability: cfg.StabilityWindow,
		log:       log,
		mb:        mb,
	}
}

// Start chooses the correct watching strategy based on config and blocks
// until ctx ends.
func (w *Watcher) Start(ctx context.Context) error {
	w.baseline()

	switch w.mode {
	case "fsnotify":
		return w.StartFsNotify(ctx)

	case "poll":
		w.StartPolling(ctx)
		return nil

	case "auto":
		res := fsprobe.Probe(w.dir)
		if res.FsnotifySupported {
			return w.StartFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled, polling instead", "reason", res.Reason)
		w.StartPolling(ctx)
		return nil

	case "off":
		w.log.Info("change watching disabled")
		<-ctx.Done()
		return nil

	default:
		return fmt.Errorf("unknown watch mode %q", w.mode)
	}
}

// baseline records the current state so that starting the daemon does not
// count as a change.
func (w *Watcher) baseline() {
	fp, _, err := Scan(w.dir)
	if err != nil {
		w.log.Warn("live folder not readable yet", "dir", w.dir, "error", err)
		return
	}
	w.mu.Lock()
	w.last = fp
	w.mu.Unlock()
	w.log.Debug("watch baseline", "files", fp.Files, "bytes", fp.Bytes, "newest", fp.Newest)
}
