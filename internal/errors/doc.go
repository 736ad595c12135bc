// Package errors provides typed errors with exit codes for vlsmcalc.
//
// # Error Types
//
// PlanError is the base error type that wraps an error with an exit code:
//
//	type PlanError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess            = 0  // Success
//	ExitGeneralError       = 1  // General/unknown errors
//	ExitInvalidBaseNetwork = 2  // Base network is not a parseable IPv4 CIDR
//	ExitInvalidRequirement = 3  // Requirement failed validation
//	ExitCapacityExceeded   = 4  // Host count exceeds IPv4 capacity
//	ExitAllocationFailed   = 5  // Base network exhausted during placement
//	ExitInputError         = 6  // Requirement file unreadable or malformed
//	ExitConfigError        = 7  // User config malformed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.InvalidBaseNetwork("10.0.0/33", err)
//	errors.InvalidRequirement("requirement for \"Sales\" must be >= 1 usable host")
//	errors.AllocationFailed("Guest", 10)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
