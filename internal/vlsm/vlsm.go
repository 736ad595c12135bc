package vlsm

import (
	"fmt"
	"sort"

	"github.com/lak-git/VLSM-Calculator/internal/errors"
	"github.com/lak-git/VLSM-Calculator/internal/ipv4"
)

// MaxUsable is the largest usable-host count any IPv4 subnet can provide,
// reached at /2 (30 host bits).
const MaxUsable = 1<<30 - 2

// Requirement is a named request for a number of usable hosts.
type Requirement struct {
	Name  string
	Hosts uint32
}

// Validate checks the requirement's invariants: a non-empty name and at
// least one requested usable host.
func (r Requirement) Validate() error {
	if r.Name == "" {
		return errors.InvalidRequirement("requirement name cannot be empty")
	}
	if r.Hosts < 1 {
		return errors.InvalidRequirement(
			fmt.Sprintf("requirement for %q must be >= 1 usable host", r.Name))
	}
	return nil
}

// Allocation is one placed requirement: the subnet it received and how
// many usable hosts the subnet provides beyond what was asked for.
type Allocation struct {
	Name    string
	Hosts   uint32
	Network ipv4.Network
	Wasted  uint32
}

// PrefixForUsable returns the smallest prefix length whose subnet provides
// at least required usable hosts, under the classic convention
// usable = 2^hostbits - 2. /31 and /32 provide no usable hosts and are
// never returned.
func PrefixForUsable(required uint32) (uint8, error) {
	if required < 1 {
		return 0, errors.InvalidRequirement("required usable hosts must be >= 1")
	}

	// host bits run from 2 (/30) up to 30 (/2); usable grows monotonically,
	// so the first fit is the tightest one
	for hostBits := 2; hostBits <= 30; hostBits++ {
		usable := uint32(1)<<hostBits - 2
		if usable >= required {
			return uint8(32 - hostBits), nil
		}
	}

	return 0, errors.CapacityExceeded(required)
}

// Allocate partitions base into subnets satisfying the given requirements.
//
// Requirements are placed largest-first: they are stable-sorted descending
// by host count (equal sizes keep their input order), then each one is
// placed at the next cursor position aligned to its own block size. The
// returned allocations are in the sorted order, not the input order.
//
// The first requirement that cannot be placed aborts the whole plan; no
// partial result is returned.
func Allocate(base ipv4.Network, requirements []Requirement) ([]Allocation, error) {
	for _, req := range requirements {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]Requirement, len(requirements))
	copy(sorted, requirements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Hosts > sorted[j].Hosts
	})

	// 64-bit cursor so that running off the end of the 32-bit address
	// space shows up as a containment failure instead of wrapping
	cursor := uint64(base.Addr())

	allocations := make([]Allocation, 0, len(sorted))
	for _, req := range sorted {
		prefix, err := PrefixForUsable(req.Hosts)
		if err != nil {
			return nil, err
		}

		block := uint64(1) << (32 - prefix)

		// align the cursor up to the next multiple of the block size;
		// a subnet is never placed at an address not aligned to its own size
		aligned := cursor &^ (block - 1)
		if aligned < cursor {
			aligned += block
		}

		if aligned+block-1 > uint64(^uint32(0)) {
			return nil, errors.AllocationFailed(req.Name, req.Hosts)
		}

		candidate, err := ipv4.NetworkFrom(ipv4.Addr(aligned), prefix)
		if err != nil {
			return nil, errors.AllocationFailed(req.Name, req.Hosts)
		}

		if !base.Contains(candidate) {
			return nil, errors.AllocationFailed(req.Name, req.Hosts)
		}

		usable := candidate.UsableHosts()
		var wasted uint32
		if usable >= req.Hosts {
			wasted = usable - req.Hosts
		}

		allocations = append(allocations, Allocation{
			Name:    req.Name,
			Hosts:   req.Hosts,
			Network: candidate,
			Wasted:  wasted,
		})

		cursor = uint64(candidate.Broadcast()) + 1
	}

	return allocations, nil
}
