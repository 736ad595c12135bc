// Package tui provides the interactive input wizard for vlsmcalc.
//
// The wizard collects the same input shape as a requirement file: a base
// IPv4 network in CIDR notation, then a loop of Name|Number requirement
// entries finished with "x", then a confirmation screen. Invalid entries
// show an inline error and do not advance. Esc steps back (cancelling at
// the first step), ctrl+c cancels outright.
package tui
