package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lak-git/VLSM-Calculator/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "vlsmcalc",
	Short: "VLSM subnet allocation calculator",
	Long: `vlsmcalc partitions a base IPv4 network into the smallest subnets
that satisfy a list of named host-count requirements.

Requirements are placed largest-first, each at the next address boundary
aligned to its own subnet size, so the resulting plan never overlaps and
wastes as few addresses as the greedy policy allows.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
)
