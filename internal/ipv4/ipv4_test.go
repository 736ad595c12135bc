package ipv4

import (
	"testing"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		in   string
		want Addr
	}{
		{"0.0.0.0", 0},
		{"10.0.0.1", 0x0A000001},
		{"192.168.1.0", 0xC0A80100},
		{"255.255.255.255", 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddr(tt.in)
			if err != nil {
				t.Fatalf("ParseAddr(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAddr(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestParseAddr_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"10.0.0",
		"10.0.0.0.0",
		"256.0.0.1",
		"10.0.0.-1",
		"a.b.c.d",
		"10..0.1",
	}

	for _, in := range invalid {
		if _, err := ParseAddr(in); err == nil {
			t.Errorf("ParseAddr(%q) should fail", in)
		}
	}
}

func TestAddrString(t *testing.T) {
	tests := []struct {
		addr Addr
		want string
	}{
		{0, "0.0.0.0"},
		{0xC0A80140, "192.168.1.64"},
		{0xFFFFFFFF, "255.255.255.255"},
	}

	for _, tt := range tests {
		if got := tt.addr.String(); got != tt.want {
			t.Errorf("Addr(%#x).String() = %q, want %q", uint32(tt.addr), got, tt.want)
		}
	}
}

func TestParseCIDR(t *testing.T) {
	tests := []struct {
		in       string
		wantAddr string
		wantBits uint8
	}{
		{"192.168.1.0/24", "192.168.1.0", 24},
		{"10.0.0.0/8", "10.0.0.0", 8},
		{"0.0.0.0/0", "0.0.0.0", 0},
		// host bits are masked off, not rejected
		{"192.168.1.17/24", "192.168.1.0", 24},
		{"10.0.0.7/30", "10.0.0.4", 30},
		// bare address becomes a /32
		{"172.16.0.5", "172.16.0.5", 32},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ParseCIDR(tt.in)
			if err != nil {
				t.Fatalf("ParseCIDR(%q) failed: %v", tt.in, err)
			}
			if got := n.Addr().String(); got != tt.wantAddr {
				t.Errorf("addr = %s, want %s", got, tt.wantAddr)
			}
			if n.Bits() != tt.wantBits {
				t.Errorf("bits = %d, want %d", n.Bits(), tt.wantBits)
			}
		})
	}
}

func TestParseCIDR_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"192.168.1.0/33",
		"192.168.1.0/-1",
		"192.168.1.0/x",
		"192.168.1/24",
		"not-a-network",
	}

	for _, in := range invalid {
		if _, err := ParseCIDR(in); err == nil {
			t.Errorf("ParseCIDR(%q) should fail", in)
		}
	}
}

func TestNetworkDerived(t *testing.T) {
	tests := []struct {
		cidr      string
		broadcast string
		netmask   string
		wildcard  string
		usable    uint32
	}{
		{"192.168.1.0/24", "192.168.1.255", "255.255.255.0", "0.0.0.255", 254},
		{"192.168.1.0/26", "192.168.1.63", "255.255.255.192", "0.0.0.63", 62},
		{"10.0.0.0/30", "10.0.0.3", "255.255.255.252", "0.0.0.3", 2},
		{"10.0.0.0/31", "10.0.0.1", "255.255.255.254", "0.0.0.1", 0},
		{"10.0.0.0/32", "10.0.0.0", "255.255.255.255", "0.0.0.0", 0},
		{"0.0.0.0/0", "255.255.255.255", "0.0.0.0", "255.255.255.255", 4294967294},
	}

	for _, tt := range tests {
		t.Run(tt.cidr, func(t *testing.T) {
			n, err := ParseCIDR(tt.cidr)
			if err != nil {
				t.Fatalf("ParseCIDR failed: %v", err)
			}
			if got := n.Broadcast().String(); got != tt.broadcast {
				t.Errorf("Broadcast() = %s, want %s", got, tt.broadcast)
			}
			if got := n.Netmask().String(); got != tt.netmask {
				t.Errorf("Netmask() = %s, want %s", got, tt.netmask)
			}
			if got := n.Wildcard().String(); got != tt.wildcard {
				t.Errorf("Wildcard() = %s, want %s", got, tt.wildcard)
			}
			if got := n.UsableHosts(); got != tt.usable {
				t.Errorf("UsableHosts() = %d, want %d", got, tt.usable)
			}
		})
	}
}

func TestUsableRange(t *testing.T) {
	n, _ := ParseCIDR("192.168.1.64/27")
	first, last, ok := n.UsableRange()
	if !ok {
		t.Fatal("UsableRange() not ok for /27")
	}
	if got := first.String(); got != "192.168.1.65" {
		t.Errorf("first = %s, want 192.168.1.65", got)
	}
	if got := last.String(); got != "192.168.1.94" {
		t.Errorf("last = %s, want 192.168.1.94", got)
	}

	// /31 and /32 have no usable hosts
	for _, cidr := range []string{"10.0.0.0/31", "10.0.0.0/32"} {
		n, _ := ParseCIDR(cidr)
		if _, _, ok := n.UsableRange(); ok {
			t.Errorf("UsableRange() ok for %s, want not ok", cidr)
		}
	}
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		cidr string
		want uint64
	}{
		{"10.0.0.0/32", 1},
		{"10.0.0.0/30", 4},
		{"10.0.0.0/24", 256},
		{"0.0.0.0/0", 1 << 32},
	}

	for _, tt := range tests {
		n, _ := ParseCIDR(tt.cidr)
		if got := n.BlockSize(); got != tt.want {
			t.Errorf("BlockSize(%s) = %d, want %d", tt.cidr, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	base, _ := ParseCIDR("192.168.1.0/24")

	tests := []struct {
		inner string
		want  bool
	}{
		{"192.168.1.0/26", true},
		{"192.168.1.192/26", true},
		{"192.168.1.0/24", true},
		{"192.168.1.0/23", false},
		{"192.168.2.0/26", false},
		{"192.168.0.192/26", false},
	}

	for _, tt := range tests {
		inner, _ := ParseCIDR(tt.inner)
		if got := base.Contains(inner); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.inner, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	a, _ := ParseCIDR("192.168.1.0/26")

	tests := []struct {
		other string
		want  bool
	}{
		{"192.168.1.64/26", false},
		{"192.168.1.0/26", true},
		{"192.168.1.0/24", true},
		{"192.168.1.32/27", true},
		{"192.168.0.0/24", false},
	}

	for _, tt := range tests {
		other, _ := ParseCIDR(tt.other)
		if got := a.Overlaps(other); got != tt.want {
			t.Errorf("Overlaps(%s) = %v, want %v", tt.other, got, tt.want)
		}
		// overlap is symmetric
		if got := other.Overlaps(a); got != tt.want {
			t.Errorf("Overlaps reverse(%s) = %v, want %v", tt.other, got, tt.want)
		}
	}
}

func TestNetworkString(t *testing.T) {
	n, _ := ParseCIDR("192.168.1.64/27")
	if got := n.String(); got != "192.168.1.64/27" {
		t.Errorf("String() = %q, want %q", got, "192.168.1.64/27")
	}
}
