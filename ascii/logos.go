// Package ascii provides the glyph templates nimbus draws and composes
// them with host telemetry into centered frames.
package ascii

import (
	"sort"

	"nimbus/sysinfo"
)

// Field identifies which telemetry value a template line carries.
type Field int

const (
	FieldUptime Field = iota + 1
	FieldLoad
	FieldMemory
	FieldInterface0
	FieldInterface1
	FieldInterface2
	FieldHost
)

// Label returns the text printed between the glyph and the value.
// Interface lines carry their own name and have no label.
func (f Field) Label() string {
	switch f {
	case FieldUptime:
		return "uptime    ::  "
	case FieldLoad:
		return "load avg  ::  "
	case FieldMemory:
		return "memory    ::  "
	case FieldHost:
		return "host      ::  "
	}
	return ""
}

// Value extracts the field from a snapshot, or "" when it is absent.
func (f Field) Value(s *sysinfo.Snapshot) string {
	if s == nil {
		return ""
	}
	switch f {
	case FieldUptime:
		return s.Uptime
	case FieldLoad:
		return s.Load
	case FieldMemory:
		return s.Memory
	case FieldHost:
		return s.Host
	case FieldInterface0:
		return s.Interface(0)
	case FieldInterface1:
		return s.Interface(1)
	case FieldInterface2:
		return s.Interface(2)
	}
	return ""
}

// Template is an immutable glyph with telemetry insertion points.
type Template struct {
	// Name is the identifier used on the command line
	Name string

	// Lines are the glyph rows without telemetry
	Lines []string

	// Column is where labels start on slot lines
	Column int

	// Width is the minimum width every composed line is padded to
	Width int

	// Slots maps a line index to the field appended to it
	Slots map[int]Field
}

// Cloud is the default glyph.
var Cloud = &Template{
	Name: "cloud",
	Lines: []string{
		`            .,ad88888888baa,`,
		`        ,d8P"""        ""9888ba.`,
		`     .a8"          ,ad88888888888a`,
		`    aP'          ,88888888888888888a`,
		`  ,8"           ,88888888888888888888,`,
		` ,8'            (888888888( )888888888,`,
		",8'             `8888888888888888888888",
		`8)               '888888888888888888888,`,
		`8                  "8888888888888888888)`,
		`8                   '888888888888888888)`,
		`8)                    "8888888888888888`,
		`(b                     "88888888888888'`,
		`'8,        (8)          8888888888888)`,
		` "8a                   ,888888888888)`,
		`   V8,                 d88888888888"`,
		"    `8b,             ,d8888888888P'",
		"      `V8a,       ,ad8888888888P'",
		`         ""88888888888888888P"`,
		`              """"""""""""`,
	},
	Column: 45,
	Width:  100,
	Slots: map[int]Field{
		7:  FieldUptime,
		8:  FieldLoad,
		9:  FieldMemory,
		10: FieldInterface0,
		11: FieldInterface1,
		12: FieldInterface2,
	},
}

// YinYang is the alternative glyph; it also shows the hostname.
var YinYang = &Template{
	Name: "yinyang",
	Lines: []string{
		`                _.ooo888888ooo._`,
		"            .o8888888888888888\"\"\"`o.",
		"         .o88888888888888888P'      `o.",
		"       .d888888888888888888'          `b.",
		"      d8888888( )888888888              `b",
		`     d88888888888888888888.               b`,
		"    d8888888888888888888888b.             `b",
		`    88888888888888888888888888b.            8`,
		`    888888888888888888888888888888b.        8`,
		`    88888888888888888888888888888888b       8`,
		`    Y888888888888888888888888888888888      P`,
		`     Y8888888888888888888888888888888P (8) P`,
		`      Y88888888888888888888888888888P     P`,
		"       `Y888888888888888888888888888'    .P",
		"         `Y8888888888888888888888P'    .d'",
		"            `\"Y888888888888888P'    .o\"'",
		"                 `\"\"\"Y888888bbooo\"\"'",
	},
	Column: 50,
	Width:  90,
	Slots: map[int]Field{
		4:  FieldHost,
		6:  FieldUptime,
		7:  FieldLoad,
		8:  FieldMemory,
		9:  FieldInterface0,
		10: FieldInterface1,
		11: FieldInterface2,
	},
}

var templates = map[string]*Template{
	Cloud.Name:   Cloud,
	YinYang.Name: YinYang,
}

// Lookup returns the template registered under name.
func Lookup(name string) (*Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// Names lists the registered template names in sorted order.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
