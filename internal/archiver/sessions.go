package archiver

import (
	"errors"
	"fmt"
	iofs "io/fs"

	"github.com/raoulx24/save-archiver/internal/session"
	"github.com/raoulx24/save-archiver/internal/snapshot"
	"github.com/raoulx24/save-archiver/internal/walk"
)

// Sessions lists the existing sessions, oldest first. A backup root that does
// not exist yet holds no sessions.
func (a *Archiver) Sessions() ([]session.Session, error) {
	sessions, err := session.List(a.paths.Backups)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return sessions, nil
}

// Describe counts the files and bytes stored in s.
func (a *Archiver) Describe(s session.Session) (snapshot.Snapshot, error) {
	snap := snapshot.New(s, s.ID.Time())

	w, err := walk.New(s.Path)
	if err != nil {
		return snap, fmt.Errorf("opening session %s: %w", s.Name(), err)
	}
	defer w.Close()

	for e, err := range w.All() {
		if err != nil {
			a.log.Warn("unreadable entry in session", "session", s.Name(), "error", err)
			continue
		}
		if !e.IsRegular() {
			snap.Skip()
			continue
		}
		snap.Add(snapshot.Artifact{Source: e.Path, Size: e.Info.Size(), ModTime: e.Info.ModTime()})
	}
	return snap, nil
}
