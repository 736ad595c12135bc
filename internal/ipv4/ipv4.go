package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr is an IPv4 address as a 32-bit unsigned integer.
type Addr uint32

// ParseAddr parses a dotted-decimal IPv4 address.
func ParseAddr(s string) (Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("invalid IPv4 address: %q", s)
	}

	var a uint32
	for _, part := range parts {
		octet, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid IPv4 address: %q", s)
		}
		a = a<<8 | uint32(octet)
	}

	return Addr(a), nil
}

// String returns the dotted-decimal form of the address.
func (a Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// Network is an IPv4 network: a base address plus a prefix length.
// The stored address always has all host bits zero.
type Network struct {
	addr Addr
	bits uint8
}

// NetworkFrom builds a network from an address and prefix length,
// masking off any set host bits. Prefix lengths above 32 are an error.
func NetworkFrom(addr Addr, bits uint8) (Network, error) {
	if bits > 32 {
		return Network{}, fmt.Errorf("invalid prefix length: /%d", bits)
	}
	return Network{addr: addr & netmask(bits), bits: bits}, nil
}

// ParseCIDR parses an IPv4 network in CIDR notation ("192.168.1.0/24").
// A bare address is treated as a /32. Set host bits are masked off
// rather than rejected.
func ParseCIDR(s string) (Network, error) {
	addrPart, bitsPart, found := strings.Cut(s, "/")

	addr, err := ParseAddr(addrPart)
	if err != nil {
		return Network{}, err
	}

	if !found {
		return Network{addr: addr, bits: 32}, nil
	}

	bits, err := strconv.ParseUint(bitsPart, 10, 8)
	if err != nil || bits > 32 {
		return Network{}, fmt.Errorf("invalid prefix length: %q", bitsPart)
	}

	return NetworkFrom(addr, uint8(bits))
}

// Addr returns the network's base address.
func (n Network) Addr() Addr {
	return n.addr
}

// Bits returns the prefix length.
func (n Network) Bits() uint8 {
	return n.bits
}

// HostBits returns the number of host bits (32 - prefix length).
func (n Network) HostBits() int {
	return 32 - int(n.bits)
}

// BlockSize returns the number of addresses in the network.
// A /0 holds 2^32 addresses, so the result is 64-bit.
func (n Network) BlockSize() uint64 {
	return 1 << n.HostBits()
}

// Netmask returns the subnet mask.
func (n Network) Netmask() Addr {
	return netmask(n.bits)
}

// Wildcard returns the wildcard mask (bitwise complement of the netmask).
func (n Network) Wildcard() Addr {
	return ^netmask(n.bits)
}

// Broadcast returns the network's broadcast address (base + 2^hostbits - 1).
func (n Network) Broadcast() Addr {
	return n.addr | ^netmask(n.bits)
}

// UsableHosts returns the usable-host count under the classic convention:
// 2^hostbits - 2 for networks with >= 2 host bits, zero for /31 and /32.
func (n Network) UsableHosts() uint32 {
	hostBits := n.HostBits()
	if hostBits < 2 {
		return 0
	}
	return uint32(uint64(1)<<hostBits - 2)
}

// UsableRange returns the first and last usable host addresses.
// ok is false for networks with no usable hosts (/31 and /32).
func (n Network) UsableRange() (first, last Addr, ok bool) {
	if n.HostBits() < 2 {
		return 0, 0, false
	}
	return n.addr + 1, n.Broadcast() - 1, true
}

// Contains reports whether other lies entirely within n.
func (n Network) Contains(other Network) bool {
	return other.addr >= n.addr && other.Broadcast() <= n.Broadcast()
}

// Overlaps reports whether the address ranges of n and other intersect.
func (n Network) Overlaps(other Network) bool {
	return n.addr <= other.Broadcast() && other.addr <= n.Broadcast()
}

// String returns the network in CIDR notation.
func (n Network) String() string {
	return fmt.Sprintf("%s/%d", n.addr, n.bits)
}

func netmask(bits uint8) Addr {
	if bits == 0 {
		return 0
	}
	return Addr(^uint32(0) << (32 - bits))
}
