package market

import (
	"fmt"
	"time"
)

// LaunchError represents a failure to start an actor run.
type LaunchError struct {
	Message string
	Cause   error
}

func (e *LaunchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to launch market search: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to launch market search: %s", e.Message)
}

func (e *LaunchError) Unwrap() error {
	return e.Cause
}

// RunError represents a run that reached a terminal failure status.
type RunError struct {
	RunID  string
	Status string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("market search run %s ended with status %s", e.RunID, e.Status)
}

// TimeoutError represents a run that did not reach a terminal status within
// the poll budget.
type TimeoutError struct {
	RunID  string
	Waited time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("market search run %s did not finish within %s", e.RunID, e.Waited)
}
