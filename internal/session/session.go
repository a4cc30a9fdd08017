// Package session names, lists and selects backup sessions. A session is a
// directory under the backup root named with the millisecond Unix timestamp
// at which it was taken.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var (
	// ErrInvalidName is wrapped by NameError.
	ErrInvalidName = errors.New("session directory name is not a timestamp")
	// ErrOutOfRange is returned when a session index does not select a session.
	ErrOutOfRange = errors.New("session index out of range")
)

// ID is a session timestamp in milliseconds since the Unix epoch.
type ID uint64

// NewID returns the ID for t. Times before the epoch map to zero.
func NewID(t time.Time) ID {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return ID(ms)
}

// ParseID parses a session directory name.
func ParseID(name string) (ID, error) {
	v, err := strconv.ParseUint(name, 10, 64)
	if err != nil {
		return 0, &NameError{Name: name, Err: err}
	}
	return ID(v), nil
}

// String returns the directory name for the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Time converts the ID back to a time.
func (id ID) Time() time.Time {
	return time.UnixMilli(int64(id))
}

// NameError reports a session directory whose name is not a timestamp.
type NameError struct {
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("session %q: %v: %v", e.Name, ErrInvalidName, e.Err)
}

func (e *NameError) Unwrap() []error {
	return []error{ErrInvalidName, e.Err}
}

// Session is one snapshot directory.
type Session struct {
	ID   ID
	Path string
}

// Name returns the directory name of the session.
func (s Session) Name() string {
	return filepath.Base(s.Path)
}

// List returns the sessions under root, oldest first. Entries that are not
// directories are ignored; a directory with a non-numeric name is an error.
func List(root string) ([]Session, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading sessions: %w", err)
	}

	var sessions []Session
	for _, ent := range entries {
		if !ent.IsDir() {
			continue
		}

		id, err := ParseID(ent.Name())
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, Session{
			ID:   id,
			Path: filepath.Join(root, ent.Name()),
		})
	}

	// Sort oldest → newest
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].ID < sessions[j].ID
	})

	return sessions, nil
}

// Index turns a signed session number into a position in a list of length
// sessions. Non-negative n counts from the oldest (0 is the oldest), negative
// n counts from the newest (-1 is the newest).
func Index(n, length int) (int, error) {
	idx := n
	if n < 0 {
		// length >= 0 and n < 0, so this cannot overflow
		idx = length + n
	}
	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("%w: %d (have %d sessions)", ErrOutOfRange, n, length)
	}
	return idx, nil
}

// Resolve returns the session selected by n under root.
func Resolve(root string, n int) (Session, error) {
	sessions, err := List(root)
	if err != nil {
		return Session{}, err
	}

	idx, err := Index(n, len(sessions))
	if err != nil {
		return Session{}, err
	}

	return sessions[idx], nil
}
