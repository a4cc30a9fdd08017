package watcher

import (
	"context"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StartFsNotify triggers detect() once fsnotify events have been quiet for the
// debounce window. Every directory holding a file is watched, and directories
// created later are added as their events arrive.
func (w *Watcher) StartFsNotify(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	w.mu.RLock()
	dir := w.dir
	debounce := w.debounce
	w.mu.RUnlock()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	watched := map[string]struct{}{dir: {}}
	w.addDirs(watcher, watched)

	w.log.Info("watching live folder", "dir", dir, "dirs", len(watched))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				w.log.Error("events channel closed")
				return nil
			}

			w.log.Debug("event", "name", ev.Name, "op", ev.Op.String())

			if ev.Has(fsnotify.Create) {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					w.watch(watcher, watched, ev.Name)
				}
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify error", "error", err)

		case <-timer.C:
			if w.detect(ctx) {
				timer.Reset(debounce)
			}
			w.addDirs(watcher, watched)
		}
	}
}

// addDirs watches every directory of the live tree that holds files.
func (w *Watcher) addDirs(watcher *fsnotify.Watcher, watched map[string]struct{}) {
	_, dirs, err := Scan(w.dir)
	if err != nil {
		return
	}
	for _, d := range dirs {
		w.watch(watcher, watched, d)
	}
}

func (w *Watcher) watch(watcher *fsnotify.Watcher, watched map[string]struct{}, dir string) {
	if _, ok := watched[dir]; ok {
		return
	}
	if err := watcher.Add(dir); err != nil {
		w.log.Warn("cannot watch directory", "dir", dir, "error", err)
		return
	}
	watched[dir] = struct{}{}
}
