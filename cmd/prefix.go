package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lak-git/VLSM-Calculator/internal/errors"
	"github.com/lak-git/VLSM-Calculator/internal/ipv4"
	"github.com/lak-git/VLSM-Calculator/internal/vlsm"
)

var prefixCmd = &cobra.Command{
	Use:   "prefix <hosts>",
	Short: "Show the smallest prefix for a host requirement",
	Long: `Show the smallest IPv4 prefix length whose subnet provides at
least the given number of usable hosts, together with its netmask,
wildcard mask, block size, and usable-host count.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrefix,
}

func init() {
	rootCmd.AddCommand(prefixCmd)
}

func runPrefix(cmd *cobra.Command, args []string) error {
	hosts, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return errors.InvalidRequirement(fmt.Sprintf("host count must be an integer: %q", args[0]))
	}

	prefix, err := vlsm.PrefixForUsable(uint32(hosts))
	if err != nil {
		return err
	}

	// prefix <= 30 here, so the zero-address network is safe to build
	n, err := ipv4.NetworkFrom(0, prefix)
	if err != nil {
		return err
	}

	fmt.Printf("Prefix:       /%d\n", prefix)
	fmt.Printf("Subnet mask:  %s\n", n.Netmask())
	fmt.Printf("Wildcard:     %s\n", n.Wildcard())
	fmt.Printf("Block size:   %d\n", n.BlockSize())
	fmt.Printf("Usable hosts: %d\n", n.UsableHosts())

	return nil
}
