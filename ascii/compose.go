package ascii

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"nimbus/sysinfo"
)

// Placeholder stands in for spaces inside the glyph block. It is zero-width
// but not whitespace, so the rainbow treats blank columns as colour columns.
// Restore must be applied before the frame reaches the terminal.
const Placeholder = "\u200b"

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Options tunes composition.
type Options struct {
	// Border wraps the glyph block in a rounded box
	Border bool
}

// Frame is a composed, centered screen.
type Frame struct {
	// Text is the centered block with spaces inside the glyph replaced by Placeholder
	Text string

	// Width and Height are the natural block size before centering
	Width  int
	Height int
}

// VisibleWidth calculates the display width of s, excluding ANSI escape
// codes and counting wide runes as two columns.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// Substitute replaces every space with Placeholder.
func Substitute(s string) string {
	return strings.ReplaceAll(s, " ", Placeholder)
}

// Restore turns every Placeholder back into a space.
func Restore(s string) string {
	return strings.ReplaceAll(s, Placeholder, " ")
}

// Overlay returns the template lines with telemetry appended to slot lines.
func (t *Template) Overlay(snap *sysinfo.Snapshot) []string {
	lines := make([]string, len(t.Lines))
	for i, line := range t.Lines {
		field, ok := t.Slots[i]
		if !ok {
			lines[i] = line
			continue
		}
		lines[i] = padTo(line, t.Column) + field.Label() + field.Value(snap)
	}
	return lines
}

// Block returns the overlaid lines padded to a common width, boxed when
// opts.Border is set. All returned lines have the same visible width.
func Block(t *Template, snap *sysinfo.Snapshot, opts Options) []string {
	lines := t.Overlay(snap)

	width := t.Width
	if w := maxWidth(lines); w > width {
		width = w
	}
	for i, line := range lines {
		lines[i] = padTo(line, width)
	}

	if opts.Border {
		boxed := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Render(strings.Join(lines, "\n"))
		lines = strings.Split(boxed, "\n")
		width = maxWidth(lines)
		for i, line := range lines {
			lines[i] = padTo(line, width)
		}
	}

	return lines
}

// Compose builds the frame for a terminal of cols x rows.
func Compose(t *Template, snap *sysinfo.Snapshot, cols, rows int, opts Options) Frame {
	lines := Block(t, snap, opts)
	width := maxWidth(lines)
	height := len(lines)

	left := (cols - width) / 2
	if left < 0 {
		left = 0
	}
	top := (rows - height) / 2
	if top < 0 {
		top = 0
	}

	margin := strings.Repeat(" ", left)
	centered := make([]string, len(lines))
	for i, line := range lines {
		centered[i] = margin + Substitute(line)
	}

	return Frame{
		Text:   strings.Repeat("\n", top) + strings.Join(centered, "\n"),
		Width:  width,
		Height: height,
	}
}

// padTo right-pads s with spaces to the given visible width.
func padTo(s string, width int) string {
	if w := VisibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func maxWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := VisibleWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
