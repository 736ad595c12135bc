// Package logging provides logging utilities for vlsmcalc.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("allocating plan", "base", base, "requirements", len(reqs))
//	logging.Warn("output file not written", "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Reading requirements from %s...", path)
//	logging.UserSuccess("Plan written to %s", output)
//	logging.UserWarning("Config file ignored: %v", err)
//	logging.UserError("Allocation failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
package logging
