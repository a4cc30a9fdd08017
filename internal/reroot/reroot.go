// Package reroot rewrites the prefix of a path while keeping the rest of it
// byte for byte. Nothing is cleaned, resolved or case folded.
package reroot

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrPrefixMismatch is returned when the strip prefix does not start the path.
	ErrPrefixMismatch = errors.New("path does not start with prefix")
	// ErrShortPath is returned when there are fewer components left than Skip asks to drop.
	ErrShortPath = errors.New("path has too few components")
)

// Mapping pairs a source path with its re-rooted destination.
type Mapping struct {
	Source      string
	Destination string
}

// Reroot replaces the literal prefix strip of src with replace.
func Reroot(src, strip, replace string) (string, error) {
	suffix, ok := strings.CutPrefix(src, strip)
	if !ok {
		return "", fmt.Errorf("reroot %q with prefix %q: %w", src, strip, ErrPrefixMismatch)
	}
	return replace + suffix, nil
}

// Rerooter maps paths below Strip to the same relative location below Replace.
// When Skip is positive, that many leading components of the remaining suffix
// are dropped first (a restore drops the session directory this way).
type Rerooter struct {
	Strip   string
	Replace string
	Skip    int
}

// Map computes the destination for src.
func (r Rerooter) Map(src string) (Mapping, error) {
	suffix, ok := strings.CutPrefix(src, r.Strip)
	if !ok {
		return Mapping{}, fmt.Errorf("reroot %q with prefix %q: %w", src, r.Strip, ErrPrefixMismatch)
	}

	for i := 0; i < r.Skip; i++ {
		rest, err := dropComponent(suffix)
		if err != nil {
			return Mapping{}, fmt.Errorf("reroot %q skipping %d components: %w", src, r.Skip, err)
		}
		suffix = rest
	}

	return Mapping{Source: src, Destination: r.Replace + suffix}, nil
}

// dropComponent removes the first component of suffix and returns what
// follows it, starting at the separator. The remainder must name something,
// so a suffix holding only one component is too short.
func dropComponent(suffix string) (string, error) {
	trimmed := strings.TrimLeftFunc(suffix, isSeparator)
	i := strings.IndexFunc(trimmed, isSeparator)
	if trimmed == "" || i < 0 {
		return "", ErrShortPath
	}
	return trimmed[i:], nil
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}
