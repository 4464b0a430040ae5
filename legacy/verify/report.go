package verify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Suite names.
const (
	SuiteCopy   = "copy"
	SuiteDivide = "divide"
)

// Result is the outcome of one check.
type Result struct {
	Suite    string
	Check    string
	Passed   bool
	Err      error
	Duration time.Duration
}

// Report collects the results of a run, copy suite first.
type Report struct {
	// RunID identifies the run in logs; it is a time-ordered UUIDv7.
	RunID   uuid.UUID
	Results []Result
}

func newRunID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	return len(r.Failures()) == 0
}

// Failures returns the failed results.
func (r *Report) Failures() []Result {
	if r == nil {
		return nil
	}

	var failed []Result

	for _, result := range r.Results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}

	return failed
}

// Summary returns a one-line count of the results.
func (r *Report) Summary() string {
	total := 0
	if r != nil {
		total = len(r.Results)
	}

	failed := len(r.Failures())

	return fmt.Sprintf("%d checks, %d passed, %d failed", total, total-failed, failed)
}
