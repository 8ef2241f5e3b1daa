package runner

import (
	"strings"
	"time"
)

// Failure classifies why a command did not succeed.
type Failure int

const (
	FailureNone Failure = iota
	// FailureNotFound means the executable could not be located.
	FailureNotFound
	FailureTimeout
	// FailureExit means the process ran and exited non-zero.
	FailureExit
	// FailureFault covers any other problem starting or waiting on the process.
	FailureFault
	FailureCanceled
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureNotFound:
		return "not_found"
	case FailureTimeout:
		return "timeout"
	case FailureExit:
		return "exit"
	case FailureFault:
		return "fault"
	case FailureCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// MarshalText renders the failure as its string name.
func (f Failure) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

const (
	DetailTimeout  = "operation timed out"
	DetailCanceled = "operation canceled"
)

// Result is the uniform outcome of one Execute call. Either Success is true
// and Output carries stdout, or Success is false and Detail is non-empty.
type Result struct {
	Success  bool          `json:"success"`
	Output   string        `json:"output"`
	Detail   string        `json:"detail,omitempty"`
	Failure  Failure       `json:"failure"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// Ok builds a successful result from raw stdout.
func Ok(stdout string) Result {
	return Result{Success: true, Output: strings.TrimRight(stdout, " \t\r\n")}
}

// Fail builds a failed result. An empty detail falls back to the failure name.
func Fail(f Failure, detail string) Result {
	if detail == "" {
		detail = f.String()
	}
	return Result{Success: false, Failure: f, Detail: detail, ExitCode: -1}
}

// DisplayDetail returns Detail without trailing line breaks.
func (r Result) DisplayDetail() string {
	return strings.TrimRight(r.Detail, "\r\n")
}
