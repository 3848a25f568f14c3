// Package sysinfo provides host telemetry retrieval and formatting.
// It defines the raw facts gathered from the operating system and the
// display-ready Snapshot that the art composer overlays on the glyph.
package sysinfo

import (
	"context"

	"nimbus/errors"
)

// MaxInterfaces is the number of interface lines surfaced in a Snapshot.
const MaxInterfaces = 3

// Family identifies the address family of an interface address.
type Family int

const (
	FamilyIPv4 Family = iota
	FamilyIPv6
)

// Address is a single address bound to a network interface.
type Address struct {
	// IP is the address without prefix length (e.g. "192.168.1.5")
	IP string

	// Family is the address family of IP
	Family Family
}

// Interface is a network interface with its bound addresses, in the order
// the operating system enumerated them.
type Interface struct {
	Name  string
	Addrs []Address
}

// Facts holds the raw host values a Snapshot is built from.
type Facts struct {
	// Hostname is the computer's network name
	Hostname string

	// UptimeSeconds is the time elapsed since boot
	UptimeSeconds uint64

	// MemAvailable is the physical memory available to new processes, in bytes
	MemAvailable uint64

	// MemTotal is the total physical memory, in bytes
	MemTotal uint64

	// Load holds the 1, 5 and 15 minute load averages
	Load [3]float64

	// Interfaces lists network interfaces in enumeration order
	Interfaces []Interface
}

// Source supplies host facts. HostSource is the production implementation;
// tests provide their own.
type Source interface {
	Facts(ctx context.Context) (*Facts, error)
}

// Snapshot is the formatted telemetry for a single tick.
type Snapshot struct {
	// Host is the hostname
	Host string

	// Uptime is the formatted uptime (e.g. "1 hour, 1 minute, 1 second")
	Uptime string

	// Memory is "available/total (percent%)"
	Memory string

	// Load is the three load averages joined by ", "
	Load string

	// Interfaces holds at most MaxInterfaces formatted interface lines
	Interfaces []string
}

// Interface returns the i-th interface line, or "" when there is none.
func (s *Snapshot) Interface(i int) string {
	if s == nil || i < 0 || i >= len(s.Interfaces) {
		return ""
	}
	return s.Interfaces[i]
}

// Collect queries src and formats the result into a Snapshot.
//
// Returns:
//   - A populated Snapshot
//   - A TELEMETRY coded error when the source cannot be read
func Collect(ctx context.Context, src Source) (*Snapshot, error) {
	facts, err := src.Facts(ctx)
	if err != nil {
		if errors.IsCode(err, errors.ErrTelemetry) {
			return nil, err
		}
		return nil, errors.WrapWithCode(err, errors.ErrTelemetry,
			"Host telemetry unavailable",
			"The previous frame stays on screen until the next refresh")
	}
	return Build(facts), nil
}

// Build formats facts into a Snapshot.
func Build(facts *Facts) *Snapshot {
	return &Snapshot{
		Host:       facts.Hostname,
		Uptime:     FormatUptime(facts.UptimeSeconds),
		Memory:     FormatMemory(facts.MemAvailable, facts.MemTotal),
		Load:       FormatLoad(facts.Load),
		Interfaces: FormatInterfaces(facts.Interfaces),
	}
}
