// Package ux provides styled terminal output for the save-archiver CLI.
// Colors are dropped automatically when the writer is not a terminal.
package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorAccent  = lipgloss.Color("#7FB069") // moss green
	ColorSuccess = lipgloss.Color("#7FB069")
	ColorWarning = lipgloss.Color("#E6AA68")
	ColorError   = lipgloss.Color("#CA3C25")
	ColorMuted   = lipgloss.Color("#6C757D")
)

// Icon is a status marker printed before a message.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
)

// Printer writes styled lines to one writer.
type Printer struct {
	out io.Writer

	title   lipgloss.Style
	bold    lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	plain   lipgloss.Style
}

// New creates a printer whose color profile matches out.
func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(ColorAccent),
		bold:    r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(ColorMuted),
		success: r.NewStyle().Foreground(ColorSuccess),
		warning: r.NewStyle().Foreground(ColorWarning),
		err:     r.NewStyle().Foreground(ColorError).Bold(true),
		plain:   r.NewStyle(),
	}
}

// Title prints a styled heading.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.out, p.title.Render(text))
}

// Success prints a line marked as done.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.success, IconSuccess, format, args...)
}

// Warn prints a line marked as a warning.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warning, IconWarning, format, args...)
}

// Error prints err as a diagnostic.
func (p *Printer) Error(err error) {
	p.line(p.err, IconError, "error: %v", err)
}

// Info prints a plain line with an arrow marker.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.bold, IconArrow, format, args...)
}

// Muted prints a de-emphasized line.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.out, p.muted.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) line(s lipgloss.Style, icon Icon, format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", s.Render(string(icon)), fmt.Sprintf(format, args...))
}

// Table prints rows in aligned columns under a bold header.
func (p *Printer) Table(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	fmt.Fprintln(p.out, p.row(header, widths, p.bold))
	for _, row := range rows {
		fmt.Fprintln(p.out, p.row(row, widths, p.plain))
	}
}

func (p *Printer) row(cells []string, widths []int, s lipgloss.Style) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		pad := widths[i] - lipgloss.Width(cell)
		if i == len(cells)-1 {
			pad = 0
		}
		parts = append(parts, s.Render(cell)+strings.Repeat(" ", pad))
	}
	return strings.Join(parts, "  ")
}
