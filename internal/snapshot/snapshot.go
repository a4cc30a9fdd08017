// Package snapshot describes the result of copying one session.
package snapshot

import (
	"time"

	"github.com/raoulx24/save-archiver/internal/session"
)

// Snapshot summarizes a backup or restore of a single session.
type Snapshot struct {
	Session  session.Session
	Files    int
	Bytes    int64
	Skipped  int // non-regular entries that were not copied
	Started  time.Time
	Finished time.Time
}

// New starts a summary for s.
func New(s session.Session, started time.Time) Snapshot {
	return Snapshot{Session: s, Started: started}
}

// Add records one copied file.
func (s *Snapshot) Add(a Artifact) {
	s.Files++
	s.Bytes += a.Size
}

// Skip records an entry that was left out.
func (s *Snapshot) Skip() {
	s.Skipped++
}

// Finish stamps the end time.
func (s *Snapshot) Finish(t time.Time) {
	s.Finished = t
}

// Duration is zero until Finish is called.
func (s Snapshot) Duration() time.Duration {
	if s.Finished.IsZero() {
		return 0
	}
	return s.Finished.Sub(s.Started)
}
