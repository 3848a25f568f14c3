// Package rainbow animates multi-line text with a cycling hue gradient.
//
// Each non-whitespace rune gets a hue from its colour column: the count of
// non-whitespace runes before it on its line. The gradient spans one full
// turn of the colour wheel across the widest line and rotates by
// 5 × speed degrees per frame. Whitespace is emitted as-is and does not
// advance the column, so callers wanting blank cells to take part in the
// gradient substitute a visible-but-zero-width rune for them.
package rainbow

import (
	"math"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// degreesPerFrame is the hue rotation per frame at speed 1.
const degreesPerFrame = 5.0

// Animation holds the text being animated and the current colour phase.
type Animation struct {
	lines   []string
	columns int
	speed   float64
	phase   float64
	profile termenv.Profile
}

// New creates an animation of text. Colours are rendered for profile;
// termenv.Ascii renders plain text.
func New(text string, speed float64, profile termenv.Profile) *Animation {
	a := &Animation{speed: speed, profile: profile}
	a.Replace(text)
	return a
}

// Replace swaps the animated text, keeping the current phase.
func (a *Animation) Replace(text string) {
	a.lines = strings.Split(text, "\n")
	a.columns = 0
	for _, line := range a.lines {
		if n := colourColumns(line); n > a.columns {
			a.columns = n
		}
	}
}

// Phase returns the current hue offset in degrees, in [0, 360).
func (a *Animation) Phase() float64 {
	return a.phase
}

// Next advances the phase by one frame and renders.
func (a *Animation) Next() string {
	a.phase = math.Mod(a.phase+degreesPerFrame*a.speed, 360)
	return a.Render()
}

// Render returns the text coloured at the current phase.
func (a *Animation) Render() string {
	var b strings.Builder
	for i, line := range a.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for _, r := range line {
			if unicode.IsSpace(r) {
				b.WriteRune(r)
				continue
			}
			b.WriteString(a.profile.String(string(r)).Foreground(a.colour(col)).String())
			col++
		}
	}
	return b.String()
}

// Hue returns the hue in degrees for colour column col at the current phase.
func (a *Animation) Hue(col int) float64 {
	spread := 0.0
	if a.columns > 0 {
		spread = 360 * float64(col) / float64(a.columns)
	}
	return math.Mod(a.phase+spread, 360)
}

func (a *Animation) colour(col int) termenv.Color {
	return a.profile.Color(colorful.Hsv(a.Hue(col), 1, 1).Hex())
}

func colourColumns(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
