// Package config provides user configuration for vlsmcalc.
//
// Configuration is an optional TOML file at
// $XDG_CONFIG_HOME/vlsmcalc/config.toml (or ~/.config/vlsmcalc/config.toml):
//
//	output = "plan.txt"   # where `vlsmcalc plan` writes the table
//	show_wasted = true    # include the Wasted IPs column by default
//
// A missing file yields defaults; command-line flags override the file.
package config
