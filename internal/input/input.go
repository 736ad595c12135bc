package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lak-git/VLSM-Calculator/internal/errors"
	"github.com/lak-git/VLSM-Calculator/internal/vlsm"
)

// Spec is the parsed input to a planning run: the base network string
// (validated later by ipv4.ParseCIDR, shared with the interactive path),
// the requirement list in file order, and whether the rendered table
// should include the wasted-address column.
type Spec struct {
	Base         string
	Requirements []vlsm.Requirement
	ShowWasted   bool
}

// ReadFile parses a requirement file. Expected format:
//
//	<base-network>              or  <base-network>|True
//	Name|Number                 one requirement per line, blank lines skipped
//
// The optional first-line flag (case-insensitive True/False, empty means
// false) enables the wasted-address column in the output table.
func ReadFile(path string) (*Spec, error) {
	if !strings.HasSuffix(path, ".txt") && !strings.HasSuffix(path, ".text") {
		return nil, errors.InputError("input file must be a .txt or .text file", nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.InputError(fmt.Sprintf("cannot read %s", path), err)
	}
	defer f.Close()

	spec := &Spec{}
	scanner := bufio.NewScanner(f)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.InputError(fmt.Sprintf("cannot read %s", path), err)
		}
		return nil, errors.InputError(fmt.Sprintf("%s is empty", path), nil)
	}

	if err := parseHeader(spec, scanner.Text()); err != nil {
		return nil, err
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		req, err := parseRequirement(line)
		if err != nil {
			return nil, err
		}
		spec.Requirements = append(spec.Requirements, req)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.InputError(fmt.Sprintf("cannot read %s", path), err)
	}

	return spec, nil
}

// parseHeader handles the first line: a base network, optionally followed
// by "|True" or "|False" to toggle the wasted-address column.
func parseHeader(spec *Spec, line string) error {
	base, flag, found := strings.Cut(strings.TrimSpace(line), "|")
	spec.Base = strings.TrimSpace(base)

	if !found {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "true":
		spec.ShowWasted = true
	case "false", "":
		spec.ShowWasted = false
	default:
		return errors.InputError("invalid extra-info flag in file (use True or False)", nil)
	}

	return nil
}

// parseRequirement parses a "Name|Number" line.
func parseRequirement(line string) (vlsm.Requirement, error) {
	name, num, found := strings.Cut(line, "|")
	if !found {
		return vlsm.Requirement{}, errors.InputError(
			fmt.Sprintf("invalid requirement line (expected 'Name|Number'): %s", line), nil)
	}

	hosts, err := strconv.ParseUint(strings.TrimSpace(num), 10, 32)
	if err != nil {
		return vlsm.Requirement{}, errors.InputError(
			fmt.Sprintf("invalid host count in requirement line: %s", line), err)
	}

	return vlsm.Requirement{
		Name:  strings.TrimSpace(name),
		Hosts: uint32(hosts),
	}, nil
}
