package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in        uint64
		precision int
		want      string
	}{
		{512, 0, "512 B"},
		{1536, 1, "1.5 KB"},
		{1536, 0, "2 KB"},
		{1792, 0, "2 KB"},
		{1280, 0, "1 KB"},
		{1023, 0, "1023 B"},
		{1048575, 0, "1 MB"},
		{1048575, 1, "1 MB"},
		{4831838208, 0, "5 GB"},
		{8482560819, 0, "8 GB"},
		{16*1024*1024*1024 - 1, 0, "16 GB"},
		{16*1024*1024*1024 - 1, 2, "16 GB"},
		{1024 * 1024, 1, "1 MB"},
		{16 * 1024 * 1024 * 1024, 0, "16 GB"},
		{7_700_000_000, 0, "7 GB"},
		{7_700_000_000, 2, "7.17 GB"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatBytes(tc.in, tc.precision), "FormatBytes(%d, %d)", tc.in, tc.precision)
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "Hi   ", PadRight("Hi", 5))
	assert.Equal(t, "HelloWorld", PadRight("HelloWorld", 5))
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, ""},
		{1, "1 second"},
		{59, "59 seconds"},
		{90, "1 minute, 30 seconds"},
		{3600, "1 hour"},
		{3661, "1 hour, 1 minute, 1 second"},
		{86400, "1 day"},
		{2*86400 + 2*3600 + 120, "2 days, 2 hours, 2 minutes"},
		{86400 + 1, "1 day, 1 second"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatUptime(tc.seconds), "FormatUptime(%d)", tc.seconds)
	}
}

func TestFormatMemory(t *testing.T) {
	const gb = 1024 * 1024 * 1024

	assert.Equal(t, "8 GB/16 GB (50%)", FormatMemory(8*gb, 16*gb))
	// 2/3 floors to 66, not 67
	assert.Equal(t, "2 GB/3 GB (66%)", FormatMemory(2*gb, 3*gb))
	assert.Equal(t, "0 B/0 B (0%)", FormatMemory(0, 0))
}

func TestFormatLoad(t *testing.T) {
	assert.Equal(t, "0.52, 1.00, 12.35", FormatLoad([3]float64{0.5234, 1, 12.345}))
	assert.Equal(t, "0.00, 0.00, 0.00", FormatLoad([3]float64{}))
}

func TestFormatInterfaces(t *testing.T) {
	ifaces := []Interface{
		{Name: "lo", Addrs: []Address{{IP: "127.0.0.1", Family: FamilyIPv4}}},
		{Name: "eth0", Addrs: []Address{{IP: "192.168.1.5", Family: FamilyIPv4}}},
		{Name: "eth0_6", Addrs: []Address{{IP: "fe80::1", Family: FamilyIPv6}}},
	}

	got := FormatInterfaces(ifaces)

	assert.Equal(t, []string{"eth0      ::  192.168.1.5"}, got)
}

func TestFormatInterfaces_JoinsAddressesAndSkipsIPv6(t *testing.T) {
	ifaces := []Interface{
		{Name: "wlan0", Addrs: []Address{
			{IP: "10.0.0.2", Family: FamilyIPv4},
			{IP: "fe80::2", Family: FamilyIPv6},
			{IP: "10.0.0.3", Family: FamilyIPv4},
		}},
	}

	assert.Equal(t, []string{"wlan0     ::  10.0.0.2, 10.0.0.3"}, FormatInterfaces(ifaces))
}

func TestFormatInterfaces_AtMostThree(t *testing.T) {
	var ifaces []Interface
	for _, name := range []string{"eth0", "eth1", "loopback9", "eth2", "eth3", "eth4"} {
		ifaces = append(ifaces, Interface{Name: name, Addrs: []Address{{IP: "10.1.1.1", Family: FamilyIPv4}}})
	}

	got := FormatInterfaces(ifaces)

	assert.Len(t, got, MaxInterfaces)
	assert.Contains(t, got[0], "eth0")
	assert.Contains(t, got[1], "eth1")
	assert.Contains(t, got[2], "eth2")
}

func TestFormatInterfaces_LongNameNotTruncated(t *testing.T) {
	ifaces := []Interface{{Name: "enp0s31f6", Addrs: []Address{{IP: "10.0.0.9", Family: FamilyIPv4}}}}
	assert.Equal(t, []string{"enp0s31f6  ::  10.0.0.9"}, FormatInterfaces(ifaces))
}
