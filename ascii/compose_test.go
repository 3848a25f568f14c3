package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/sysinfo"
)

func testSnapshot() *sysinfo.Snapshot {
	return &sysinfo.Snapshot{
		Host:   "cirrus",
		Uptime: "1 hour, 1 minute, 1 second",
		Memory: "4 GB/16 GB (25%)",
		Load:   "0.10, 0.25, 1.50",
		Interfaces: []string{
			"eth0      ::  192.168.1.5",
			"wlan0     ::  10.0.0.2",
		},
	}
}

func TestOverlay_Cloud(t *testing.T) {
	lines := Cloud.Overlay(testSnapshot())

	require.Len(t, lines, len(Cloud.Lines))
	assert.Equal(t, `8)               '888888888888888888888,     uptime    ::  1 hour, 1 minute, 1 second`, lines[7])
	assert.Equal(t, `8                  "8888888888888888888)     load avg  ::  0.10, 0.25, 1.50`, lines[8])
	assert.Equal(t, `8                   '888888888888888888)     memory    ::  4 GB/16 GB (25%)`, lines[9])
	assert.Equal(t, `8)                    "8888888888888888      eth0      ::  192.168.1.5`, lines[10])
	assert.Equal(t, `(b                     "88888888888888'      wlan0     ::  10.0.0.2`, lines[11])
	// third interface is absent: only the glyph, padded to the slot column
	assert.Equal(t, `'8,        (8)          8888888888888)       `, lines[12])
	assert.Equal(t, Cloud.Lines[0], lines[0])
}

func TestOverlay_NilSnapshot(t *testing.T) {
	lines := YinYang.Overlay(nil)
	assert.True(t, strings.HasSuffix(lines[4], "host      ::  "))
}

func TestBlock_UniformWidth(t *testing.T) {
	snaps := []*sysinfo.Snapshot{
		nil,
		testSnapshot(),
		{Uptime: strings.Repeat("9 days, ", 20), Interfaces: []string{"a", "b", "c"}},
	}

	for _, tpl := range []*Template{Cloud, YinYang} {
		for _, border := range []bool{false, true} {
			for _, snap := range snaps {
				lines := Block(tpl, snap, Options{Border: border})
				require.NotEmpty(t, lines)

				want := VisibleWidth(lines[0])
				assert.GreaterOrEqual(t, want, tpl.Width)
				for i, line := range lines {
					assert.Equal(t, want, VisibleWidth(line), "%s border=%v line %d", tpl.Name, border, i)
				}
			}
		}
	}
}

func TestBlock_Border(t *testing.T) {
	plain := Block(Cloud, testSnapshot(), Options{})
	boxed := Block(Cloud, testSnapshot(), Options{Border: true})

	// border rows plus one padding row on each side
	assert.Equal(t, len(plain)+4, len(boxed))
	assert.True(t, strings.HasPrefix(boxed[0], "╭"))
	assert.True(t, strings.HasPrefix(boxed[len(boxed)-1], "╰"))
}

func TestCompose_Centering(t *testing.T) {
	frame := Compose(Cloud, testSnapshot(), 120, 40, Options{})

	assert.Equal(t, 100, frame.Width)
	assert.Equal(t, len(Cloud.Lines), frame.Height)

	lines := strings.Split(frame.Text, "\n")
	top := (40 - len(Cloud.Lines)) / 2
	require.Len(t, lines, top+len(Cloud.Lines))
	for i := 0; i < top; i++ {
		assert.Empty(t, lines[i])
	}

	first := lines[top]
	assert.True(t, strings.HasPrefix(first, strings.Repeat(" ", 10)+Placeholder))
	assert.Equal(t, 100+10, VisibleWidth(Restore(first)))
}

func TestCompose_Deterministic(t *testing.T) {
	a := Compose(YinYang, testSnapshot(), 132, 43, Options{Border: true})
	b := Compose(YinYang, testSnapshot(), 132, 43, Options{Border: true})
	assert.Equal(t, a, b)
}

func TestCompose_ZeroFloor(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
	}{
		{"rows equal to height", 200, len(Cloud.Lines)},
		{"rows below height", 200, 3},
		{"cols below width", 40, 50},
		{"zero terminal", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := Compose(Cloud, testSnapshot(), tt.cols, tt.rows, Options{})
			lines := strings.Split(frame.Text, "\n")

			if tt.rows <= frame.Height {
				assert.Len(t, lines, frame.Height, "no vertical margin")
			}
			if tt.cols < frame.Width {
				assert.False(t, strings.HasPrefix(lines[len(lines)-1], " "), "no horizontal margin")
			}
		})
	}
}

func TestCompose_GlyphHasNoSpaces(t *testing.T) {
	frame := Compose(Cloud, testSnapshot(), 100, 19, Options{})
	assert.NotContains(t, frame.Text, " ")
	assert.Contains(t, Restore(frame.Text), "uptime    ::  1 hour")
}

func TestSubstituteRestoreRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"a b  c",
		"  leading and trailing  ",
		"multi\nline text\n with spaces ",
		"tabs\tstay\ttabs",
	}

	for _, in := range inputs {
		sub := Substitute(in)
		assert.NotContains(t, sub, " ")
		assert.Equal(t, in, Restore(sub))
	}
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 5, VisibleWidth("hello"))
	assert.Equal(t, 5, VisibleWidth("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, 0, VisibleWidth(Placeholder))
	assert.Equal(t, 4, VisibleWidth("日本"))
}

func TestLookup(t *testing.T) {
	tpl, ok := Lookup("yinyang")
	require.True(t, ok)
	assert.Same(t, YinYang, tpl)

	_, ok = Lookup("moon")
	assert.False(t, ok)

	assert.Equal(t, []string{"cloud", "yinyang"}, Names())
}

func TestTemplatesFitColumns(t *testing.T) {
	for _, tpl := range []*Template{Cloud, YinYang} {
		for i := range tpl.Slots {
			require.Less(t, i, len(tpl.Lines), tpl.Name)
			assert.LessOrEqual(t, VisibleWidth(tpl.Lines[i]), tpl.Column, "%s line %d overlaps label column", tpl.Name, i)
		}
	}
}
