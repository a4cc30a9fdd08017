package snapshot

import (
	"time"

	"github.com/raoulx24/save-archiver/internal/reroot"
	"github.com/raoulx24/save-archiver/internal/walk"
)

// Artifact describes a single file copied within a snapshot.
type Artifact struct {
	Source      string
	Destination string
	Size        int64
	ModTime     time.Time
}

// FromEntry constructs an Artifact from a walked entry and its mapping.
func FromEntry(m reroot.Mapping, e walk.Entry) Artifact {
	return Artifact{
		Source:      m.Source,
		Destination: m.Destination,
		Size:        e.Info.Size(),
		ModTime:     e.Info.ModTime(),
	}
}
