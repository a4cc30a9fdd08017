package ux

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_PlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Title("Sessions")
	p.Success("saved %d files", 3)
	p.Warn("nothing to do")
	p.Error(errors.New("boom"))
	p.Info("next run %s", "soon")
	p.Muted("(scratch kept)")

	assert.Equal(t, strings.Join([]string{
		"Sessions",
		"✓ saved 3 files",
		"⚠ nothing to do",
		"✗ error: boom",
		"→ next run soon",
		"(scratch kept)",
		"",
	}, "\n"), buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Table(
		[]string{"#", "SESSION", "SIZE"},
		[][]string{
			{"0", "100", "1.0 kB"},
			{"-1", "1700000000123", "12 MB"},
		},
	)

	assert.Equal(t,
		"#   SESSION        SIZE\n"+
			"0   100            1.0 kB\n"+
			"-1  1700000000123  12 MB\n",
		buf.String())
}
