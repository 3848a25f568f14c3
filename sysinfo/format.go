// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// interfaceNameWidth is the column width interface names are padded to.
const interfaceNameWidth = 8

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Parameters:
//   - bytes: The number of bytes to format
//   - precision: Decimal places to round to; trailing zeros are dropped
//
// Returns:
//   - A formatted string with the most appropriate binary unit (B, KB, MB, GB, TB, PB)
//
// A value that rounds up to 1024 moves to the next unit.
//
// Example: FormatBytes(1536, 1) returns "1.5 KB", FormatBytes(1536, 0) returns "2 KB",
// FormatBytes(1048575, 0) returns "1 MB"
func FormatBytes(bytes uint64, precision int) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value, exp := float64(bytes)/unit, 0
	for value >= unit && exp < len(units)-1 {
		value /= unit
		exp++
	}

	value = roundTo(value, precision)
	if value >= unit && exp < len(units)-1 {
		value = roundTo(value/unit, precision)
		exp++
	}

	return humanize.FtoaWithDigits(value, precision) + " " + units[exp]
}

// roundTo rounds v half away from zero to the given number of decimals.
// humanize.FtoaWithDigits only cuts digits, so rounding happens here.
func roundTo(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

// PadRight pads a string with spaces to reach a minimum width.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// FormatUptime converts seconds since boot into a human-readable string.
//
// Only nonzero components are included, largest first, joined by ", ".
// Each unit is pluralized unless its value is exactly 1.
//
// Example: FormatUptime(3661) returns "1 hour, 1 minute, 1 second";
// FormatUptime(0) returns "".
func FormatUptime(seconds uint64) string {
	components := []struct {
		value uint64
		label string
	}{
		{seconds / 86400, "day"},
		{seconds / 3600 % 24, "hour"},
		{seconds / 60 % 60, "minute"},
		{seconds % 60, "second"},
	}

	var parts []string
	for _, c := range components {
		if c.value > 0 {
			parts = append(parts, fmt.Sprintf("%d %s%s", c.value, c.label, plural(c.value)))
		}
	}
	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count uint64) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// FormatMemory renders available and total memory as
// "available/total (percent%)", percent being floor(100 * available / total).
func FormatMemory(available, total uint64) string {
	percent := 0.0
	if total > 0 {
		percent = math.Floor(100 * float64(available) / float64(total))
	}
	return fmt.Sprintf("%s/%s (%d%%)", FormatBytes(available, 0), FormatBytes(total, 0), int(percent))
}

// FormatLoad renders the load averages with two decimals each, joined by ", ".
func FormatLoad(load [3]float64) string {
	parts := make([]string, len(load))
	for i, v := range load {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, ", ")
}

// FormatInterfaces renders up to MaxInterfaces interface lines.
//
// Interfaces whose name starts with "lo" are loopbacks and are skipped, as
// are interfaces with no IPv4 address. Each kept interface renders as
// "<name padded to 8>  ::  <comma-joined IPv4 addresses>".
func FormatInterfaces(ifaces []Interface) []string {
	var lines []string
	for _, iface := range ifaces {
		if strings.HasPrefix(iface.Name, "lo") {
			continue
		}

		var v4 []string
		for _, a := range iface.Addrs {
			if a.Family == FamilyIPv4 {
				v4 = append(v4, a.IP)
			}
		}
		if len(v4) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s  ::  %s", PadRight(iface.Name, interfaceNameWidth), strings.Join(v4, ", ")))
		if len(lines) == MaxInterfaces {
			break
		}
	}
	return lines
}
