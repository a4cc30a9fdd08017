package archiver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/raoulx24/save-archiver/internal/reroot"
	"github.com/raoulx24/save-archiver/internal/snapshot"
	"github.com/raoulx24/save-archiver/internal/walk"
)

// copyTree copies every entry produced by w to the destination r maps it to.
func (a *Archiver) copyTree(ctx context.Context, w *walk.Walker, r reroot.Rerooter, snap *snapshot.Snapshot) error {
	for e, err := range w.All() {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			return fmt.Errorf("walking %s: %w", w.Root(), err)
		}

		m, err := r.Map(e.Path)
		if err != nil {
			return err
		}

		copied, err := a.copyEntry(ctx, e, m)
		if err != nil {
			return err
		}
		if !copied {
			snap.Skip()
			continue
		}
		snap.Add(snapshot.FromEntry(m, e))
	}
	return nil
}

// copyEntry copies one walked entry. Symlinks are copied by content when they
// point at a regular file; devices, pipes, sockets and links to directories
// are skipped.
func (a *Archiver) copyEntry(ctx context.Context, e walk.Entry, m reroot.Mapping) (bool, error) {
	if !e.IsRegular() {
		fi, err := a.fs.Stat(m.Source)
		if err != nil || !fi.Mode.IsRegular() {
			a.log.Warn("skipping non-regular file", "path", m.Source, "mode", e.Info.Mode().String())
			return false, nil
		}
	}

	if err := a.fs.MkdirAll(filepath.Dir(m.Destination)); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(m.Destination), err)
	}

	a.log.Debug("copying", "src", m.Source, "dst", m.Destination)
	if err := a.fs.CopyFile(ctx, m.Source, m.Destination); err != nil {
		return false, fmt.Errorf("copying %s: %w", m.Source, err)
	}
	return true, nil
}
