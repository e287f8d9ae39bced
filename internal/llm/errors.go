package llm

import (
	"errors"
	"fmt"
)

// ErrCallFailed marks any upstream provider failure.
var ErrCallFailed = errors.New("provider call failed")

// ErrTimeout marks an upstream call that exceeded its deadline. A timed-out
// call also matches ErrCallFailed so failover logic can treat both alike.
var ErrTimeout = errors.New("provider call timed out")

// CallError carries structured detail about a failed provider call.
type CallError struct {
	Provider Provider
	Status   int // upstream HTTP status when known, 0 otherwise
	Timeout  bool
	Message  string
}

func (e *CallError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("provider %s timed out: %s", e.Provider, e.Message)
	}
	if e.Status != 0 {
		return fmt.Sprintf("provider %s call failed (status %d): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("provider %s call failed: %s", e.Provider, e.Message)
}

// Is lets errors.Is match CallError against the package sentinels.
func (e *CallError) Is(target error) bool {
	if target == ErrCallFailed {
		return true
	}
	return target == ErrTimeout && e.Timeout
}
