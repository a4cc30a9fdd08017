// Package archiver copies the live save folder into timestamped sessions and
// restores a chosen session back over it.
package archiver

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"time"

	"github.com/raoulx24/save-archiver/internal/config"
	"github.com/raoulx24/save-archiver/internal/fs"
	"github.com/raoulx24/save-archiver/internal/logging"
	"github.com/raoulx24/save-archiver/internal/reroot"
	"github.com/raoulx24/save-archiver/internal/session"
	"github.com/raoulx24/save-archiver/internal/snapshot"
	"github.com/raoulx24/save-archiver/internal/walk"
)

// ErrLiveNotDir is returned by Restore when the live path exists but is not a folder.
var ErrLiveNotDir = errors.New("live save path is not a directory")

// Archiver performs backups and restores between the configured folders.
type Archiver struct {
	paths config.Paths
	fs    fs.FS
	log   logging.Logger
	now   func() time.Time
}

// New creates an archiver. A nil filesystem selects the OS one.
func New(paths config.Paths, log logging.Logger, filesystem fs.FS) *Archiver {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Archiver{
		paths: paths,
		fs:    filesystem,
		log:   log,
		now:   time.Now,
	}
}

// WithClock replaces the clock used to name sessions.
func (a *Archiver) WithClock(now func() time.Time) *Archiver {
	a.now = now
	return a
}

func (a *Archiver) Paths() config.Paths {
	return a.paths
}

// Backup copies every file of the live folder into a new session named after
// the current time. The first failure aborts the backup; files already copied
// stay in the session directory.
func (a *Archiver) Backup(ctx context.Context) (snapshot.Snapshot, error) {
	started := a.now()
	id := session.NewID(started)
	dest := filepath.Join(a.paths.Backups, id.String())
	snap := snapshot.New(session.Session{ID: id, Path: dest}, started)

	w, err := walk.New(a.paths.Live)
	if err != nil {
		return snap, fmt.Errorf("opening live folder: %w", err)
	}
	defer w.Close()

	a.log.Info("backing up", "live", w.Root(), "session", dest)

	if err := a.fs.MkdirAll(a.paths.Backups); err != nil {
		return snap, fmt.Errorf("creating backup root: %w", err)
	}
	if err := a.fs.Mkdir(dest); err != nil {
		return snap, fmt.Errorf("creating session %s: %w", id, err)
	}

	r := reroot.Rerooter{Strip: w.Root(), Replace: dest}
	if err := a.copyTree(ctx, w, r, &snap); err != nil {
		return snap, err
	}

	snap.Finish(a.now())
	a.log.Info("backup complete",
		"session", id,
		"files", snap.Files,
		"bytes", snap.Bytes,
		"skipped", snap.Skipped,
		"took", snap.Duration(),
	)
	return snap, nil
}

// Restore replaces the live folder with the session selected by n, using the
// same signed numbering as session.Index. The previous live folder is kept as
// the scratch folder, replacing whatever was there before.
func (a *Archiver) Restore(ctx context.Context, n int) (snapshot.Snapshot, error) {
	sess, err := session.Resolve(a.paths.Backups, n)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("selecting session %d: %w", n, err)
	}

	snap := snapshot.New(sess, a.now())

	w, err := walk.New(sess.Path)
	if err != nil {
		return snap, fmt.Errorf("opening session %s: %w", sess.Name(), err)
	}
	defer w.Close()

	a.log.Info("restoring", "session", sess.Name(), "taken", sess.ID.Time(), "live", a.paths.Live)

	if err := a.clearScratch(); err != nil {
		return snap, err
	}
	if err := a.moveLiveAside(ctx); err != nil {
		return snap, err
	}
	if err := a.fs.MkdirAll(a.paths.Live); err != nil {
		return snap, fmt.Errorf("creating live folder: %w", err)
	}

	r := reroot.Rerooter{Strip: a.paths.Backups, Replace: a.paths.Live, Skip: 1}
	if err := a.copyTree(ctx, w, r, &snap); err != nil {
		return snap, err
	}

	snap.Finish(a.now())
	a.log.Info("restore complete",
		"session", sess.Name(),
		"files", snap.Files,
		"bytes", snap.Bytes,
		"took", snap.Duration(),
	)
	return snap, nil
}

// clearScratch removes the scratch folder left by a previous restore.
func (a *Archiver) clearScratch() error {
	if _, err := a.fs.Stat(a.paths.Scratch); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking scratch folder: %w", err)
	}

	a.log.Debug("removing scratch folder", "path", a.paths.Scratch)
	if err := a.fs.RemoveAll(a.paths.Scratch); err != nil {
		return fmt.Errorf("removing scratch folder: %w", err)
	}
	return nil
}

// moveLiveAside renames the live folder to the scratch folder.
func (a *Archiver) moveLiveAside(ctx context.Context) error {
	fi, err := a.fs.Stat(a.paths.Live)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			a.log.Debug("no live folder to keep", "path", a.paths.Live)
			return nil
		}
		return fmt.Errorf("checking live folder: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: %w", a.paths.Live, ErrLiveNotDir)
	}

	a.log.Debug("keeping live folder", "from", a.paths.Live, "to", a.paths.Scratch)
	if err := a.fs.Rename(ctx, a.paths.Live, a.paths.Scratch); err != nil {
		return fmt.Errorf("moving live folder aside: %w", err)
	}
	return nil
}
