// Package ipv4 provides small immutable value types for IPv4 addresses
// and networks, backed by 32-bit unsigned integer arithmetic.
//
// # Types
//
// Addr is a 32-bit address with a dotted-decimal string form. Network is
// an (address, prefix length) pair whose stored address always has its
// host bits zeroed; constructors normalize by masking rather than
// rejecting.
//
// # Derived Values
//
// Network exposes the values subnet planning needs directly:
//
//	n, _ := ipv4.ParseCIDR("192.168.1.0/26")
//	n.Broadcast()   // 192.168.1.63
//	n.Netmask()     // 255.255.255.192
//	n.Wildcard()    // 0.0.0.63
//	n.UsableHosts() // 62
//
// All values are immutable and copyable; there is no shared state.
package ipv4
