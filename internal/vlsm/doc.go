// Package vlsm implements Variable Length Subnet Mask allocation.
//
// # Sizing
//
// PrefixForUsable maps a required usable-host count to the smallest prefix
// length that satisfies it:
//
//	vlsm.PrefixForUsable(50)  // /26 (62 usable)
//	vlsm.PrefixForUsable(2)   // /30 (2 usable)
//
// # Allocation
//
// Allocate places each requirement inside a base network, largest first,
// at the next address boundary aligned to the subnet's own block size:
//
//	base, _ := ipv4.ParseCIDR("192.168.1.0/24")
//	allocs, err := vlsm.Allocate(base, []vlsm.Requirement{
//	    {Name: "Sales", Hosts: 50},
//	    {Name: "IT", Hosts: 20},
//	})
//
// The resulting subnets are pairwise disjoint and wholly contained in the
// base network. Allocation is deterministic: identical inputs always
// produce identical plans.
package vlsm
