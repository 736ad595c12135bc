package main

import (
	"os"

	"github.com/lak-git/VLSM-Calculator/cmd"
	"github.com/lak-git/VLSM-Calculator/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
