package walk

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walker yields the files below a root directory, one per call to Next.
// A Walker is not safe for concurrent use and cannot be restarted.
type Walker struct {
	root  string
	batch int

	open func(path string) (dirReader, error)
	stat func(d fs.DirEntry) (fs.FileInfo, error)

	// directory currently being drained
	dir     dirReader
	dirPath string
	buf     []fs.DirEntry
	readErr error

	// subdirectories found but not yet descended into (LIFO)
	pending []string

	done bool
}

// New opens root for walking. It fails if root does not exist, cannot be
// read, or is not a directory.
func New(root string, opts ...Option) (*Walker, error) {
	w := &Walker{
		root:  filepath.Clean(root),
		batch: defaultBatchSize,
		open:  openDir,
		stat:  entryInfo,
	}
	for _, opt := range opts {
		opt(w)
	}

	info, err := os.Stat(w.root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "walk", Path: w.root, Err: ErrNotDir}
	}

	d, err := w.open(w.root)
	if err != nil {
		return nil, err
	}
	w.dir, w.dirPath = d, w.root

	return w, nil
}

// Root returns the cleaned root path. Every Entry.Path starts with it.
func (w *Walker) Root() string {
	return w.root
}

// Next returns the next file. It returns Done once the walk is finished.
//
// Any other error is reported for a single entry or directory only: a failed
// lstat, a failed directory read, or a subdirectory that could not be opened.
// The walk resumes with the remaining entries on the next call.
func (w *Walker) Next() (Entry, error) {
	for {
		if w.done {
			return Entry{}, Done
		}

		if w.dir == nil {
			if len(w.pending) == 0 {
				w.done = true
				return Entry{}, Done
			}

			last := len(w.pending) - 1
			path := w.pending[last]
			w.pending[last] = ""
			w.pending = w.pending[:last]

			d, err := w.open(path)
			if err != nil {
				// the directory is abandoned; other pending ones are still tried
				return Entry{}, err
			}
			w.dir, w.dirPath = d, path
			continue
		}

		if len(w.buf) == 0 {
			if w.readErr != nil {
				err := w.readErr
				w.closeActive()
				return Entry{}, err
			}

			batch, err := w.dir.ReadDir(w.batch)
			if err != nil && !errors.Is(err, io.EOF) {
				w.readErr = err
			}
			if len(batch) == 0 {
				if w.readErr == nil {
					w.closeActive()
				}
				continue
			}
			w.buf = batch
		}

		d := w.buf[0]
		w.buf[0] = nil
		w.buf = w.buf[1:]

		path := filepath.Join(w.dirPath, d.Name())
		info, err := w.stat(d)
		if err != nil {
			return Entry{}, pathError("lstat", path, err)
		}

		if info.IsDir() {
			w.pending = append(w.pending, path)
			continue
		}

		return Entry{Path: path, Info: info}, nil
	}
}

// All adapts the walker to a range-over-func sequence. Iteration stops at
// Done or when the loop body breaks.
func (w *Walker) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for {
			e, err := w.Next()
			if errors.Is(err, Done) {
				return
			}
			if !yield(e, err) {
				return
			}
		}
	}
}

// Close releases the open directory handle and ends the walk.
func (w *Walker) Close() error {
	var err error
	if w.dir != nil {
		err = w.dir.Close()
	}
	w.dir = nil
	w.buf = nil
	w.readErr = nil
	w.pending = nil
	w.done = true
	return err
}

func (w *Walker) closeActive() {
	_ = w.dir.Close()
	w.dir = nil
	w.dirPath = ""
	w.buf = nil
	w.readErr = nil
}

func pathError(op, path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}
