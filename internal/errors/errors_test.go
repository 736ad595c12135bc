package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPlanError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *PlanError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestPlanError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *PlanError
		wantCode int
	}{
		{"invalid base network", InvalidBaseNetwork("10.0.0/33", fmt.Errorf("bad prefix")), ExitInvalidBaseNetwork},
		{"invalid requirement", InvalidRequirement("hosts must be >= 1"), ExitInvalidRequirement},
		{"capacity exceeded", CapacityExceeded(1 << 31), ExitCapacityExceeded},
		{"allocation failed", AllocationFailed("Guest", 10), ExitAllocationFailed},
		{"input error", InputError("malformed line", nil), ExitInputError},
		{"config error", ConfigError("bad toml", fmt.Errorf("parse error")), ExitConfigError},
		{"cancelled", Cancelled(), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() == "" {
				t.Error("Error() should not be empty")
			}
		})
	}
}

func TestAllocationFailed_Message(t *testing.T) {
	err := AllocationFailed("Guest", 10)
	want := `not enough address space in base network to allocate "Guest" (10 hosts)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil cause plan error", New(ExitAllocationFailed, "boom"), ExitAllocationFailed},
		{"wrapped plan error", fmt.Errorf("context: %w", New(ExitInputError, "bad file")), ExitInputError},
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", CapacityExceeded(1<<31))

	var planErr *PlanError
	if !errors.As(err, &planErr) {
		t.Fatal("errors.As should find PlanError in chain")
	}
	if planErr.Code != ExitCapacityExceeded {
		t.Errorf("Code = %d, want %d", planErr.Code, ExitCapacityExceeded)
	}
}
