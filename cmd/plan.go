package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lak-git/VLSM-Calculator/internal/config"
	"github.com/lak-git/VLSM-Calculator/internal/errors"
	"github.com/lak-git/VLSM-Calculator/internal/input"
	"github.com/lak-git/VLSM-Calculator/internal/ipv4"
	"github.com/lak-git/VLSM-Calculator/internal/logging"
	"github.com/lak-git/VLSM-Calculator/internal/render"
	"github.com/lak-git/VLSM-Calculator/internal/tui"
	"github.com/lak-git/VLSM-Calculator/internal/vlsm"
)

var planCmd = &cobra.Command{
	Use:   "plan [file.txt]",
	Short: "Compute a VLSM allocation plan",
	Long: `Compute a VLSM allocation plan from a requirement file, or
interactively when no file is given.

File format:
  192.168.1.0/24          base network, optionally followed by |True
  Sales|50                one Name|Number requirement per line
  IT|20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

var (
	planOutput string
	planWasted bool
	planNoSave bool
)

func init() {
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "File to write the plan table to")
	planCmd.Flags().BoolVar(&planWasted, "wasted", false, "Include the Wasted IPs column")
	planCmd.Flags().BoolVar(&planNoSave, "no-save", false, "Don't write the plan to a file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var spec *input.Spec
	if len(args) == 1 {
		logInfo("Reading requirements from %s", args[0])
		logging.Debug("reading requirement file", "path", args[0])
		spec, err = input.ReadFile(args[0])
	} else {
		spec, err = tui.Run()
	}
	if err != nil {
		return err
	}

	base, err := ipv4.ParseCIDR(spec.Base)
	if err != nil {
		return errors.InvalidBaseNetwork(spec.Base, err)
	}

	if len(spec.Requirements) == 0 {
		return errors.InputError("no requirements provided", nil)
	}

	logging.Debug("allocating plan", "base", base.String(), "requirements", len(spec.Requirements))
	allocations, err := vlsm.Allocate(base, spec.Requirements)
	if err != nil {
		return err
	}

	showWasted := spec.ShowWasted || cfg.ShowWasted || planWasted
	table := render.Table(allocations, showWasted)
	fmt.Println(table)

	if planNoSave {
		return nil
	}

	output := cfg.Output
	if planOutput != "" {
		output = planOutput
	}

	logging.Debug("writing plan file", "path", output)
	if err := os.WriteFile(output, []byte(table+"\n"), 0644); err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to write "+output, err)
	}

	logSuccess("Plan written to %s", output)
	return nil
}
