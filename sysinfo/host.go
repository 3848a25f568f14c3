package sysinfo

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"

	"nimbus/errors"
)

// HostSource reads facts from the local machine through gopsutil.
type HostSource struct{}

// NewHostSource returns a Source backed by the local host.
func NewHostSource() *HostSource {
	return &HostSource{}
}

// Facts implements Source.
func (HostSource) Facts(ctx context.Context) (*Facts, error) {
	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return nil, telemetryErr("uptime", err)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, telemetryErr("memory", err)
	}

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, telemetryErr("load average", err)
	}

	stats, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, telemetryErr("network interfaces", err)
	}

	facts := &Facts{
		UptimeSeconds: uptime,
		MemAvailable:  vm.Available,
		MemTotal:      vm.Total,
		Load:          [3]float64{avg.Load1, avg.Load5, avg.Load15},
		Interfaces:    make([]Interface, 0, len(stats)),
	}

	// Hostname is decoration only; a failure here must not cost the tick.
	if info, err := host.InfoWithContext(ctx); err == nil {
		facts.Hostname = info.Hostname
	}

	for _, s := range stats {
		iface := Interface{Name: s.Name}
		for _, a := range s.Addrs {
			if addr, ok := parseAddress(a.Addr); ok {
				iface.Addrs = append(iface.Addrs, addr)
			}
		}
		facts.Interfaces = append(facts.Interfaces, iface)
	}

	return facts, nil
}

// parseAddress converts a gopsutil address ("192.168.1.5/24" or a bare IP)
// into an Address tagged with its family.
func parseAddress(s string) (Address, bool) {
	var ip netip.Addr
	if p, err := netip.ParsePrefix(s); err == nil {
		ip = p.Addr()
	} else if a, err := netip.ParseAddr(s); err == nil {
		ip = a
	} else {
		return Address{}, false
	}

	family := FamilyIPv6
	if ip.Is4() {
		family = FamilyIPv4
	}
	return Address{IP: ip.String(), Family: family}, true
}

func telemetryErr(what string, err error) error {
	return errors.WrapWithCode(err, errors.ErrTelemetry,
		fmt.Sprintf("Cannot read %s", what),
		"The previous frame stays on screen until the next refresh")
}
