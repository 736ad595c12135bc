package errors

import (
	"errors"
	"fmt"
)

// Exit codes for vlsmcalc
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitInvalidBaseNetwork = 2
	ExitInvalidRequirement = 3
	ExitCapacityExceeded   = 4
	ExitAllocationFailed   = 5
	ExitInputError         = 6
	ExitConfigError        = 7
)

// PlanError is the base error type for vlsmcalc
type PlanError struct {
	Code    int
	Message string
	Cause   error
}

func (e *PlanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *PlanError) ExitCode() int {
	return e.Code
}

// New creates a new PlanError
func New(code int, message string) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PlanError
func Wrap(code int, message string, cause error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// InvalidBaseNetwork returns an error for an unparseable base network
func InvalidBaseNetwork(base string, cause error) *PlanError {
	return Wrap(ExitInvalidBaseNetwork, fmt.Sprintf("invalid base network %q", base), cause)
}

// InvalidRequirement returns an error for a requirement that fails validation
func InvalidRequirement(message string) *PlanError {
	return New(ExitInvalidRequirement, message)
}

// CapacityExceeded returns an error for a host count no IPv4 subnet can satisfy
func CapacityExceeded(required uint32) *PlanError {
	return New(ExitCapacityExceeded, fmt.Sprintf("requirement of %d hosts exceeds IPv4 capacity", required))
}

// AllocationFailed returns an error for a requirement that cannot be placed
// inside the base network
func AllocationFailed(name string, required uint32) *PlanError {
	return New(ExitAllocationFailed,
		fmt.Sprintf("not enough address space in base network to allocate %q (%d hosts)", name, required))
}

// InputError returns an error for an unreadable or malformed requirement file
func InputError(message string, cause error) *PlanError {
	return Wrap(ExitInputError, message, cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *PlanError {
	return Wrap(ExitConfigError, message, cause)
}

// Cancelled returns an error for an interactive session the user aborted
func Cancelled() *PlanError {
	return New(ExitGeneralError, "cancelled")
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var planErr *PlanError
	if errors.As(err, &planErr) {
		return planErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
