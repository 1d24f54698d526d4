package fileprovider

import (
	"errors"
	"fmt"
)

// ConflictPolicy decides what a transfer does when the destination already holds an item with the same name.
// The values are the ones the document server expects.
type ConflictPolicy int

// Conflict policies.
const (
	ConflictSkip      ConflictPolicy = 0
	ConflictOverwrite ConflictPolicy = 1
	ConflictDuplicate ConflictPolicy = 2
)

// String returns the lower case policy name.
func (c ConflictPolicy) String() string {
	switch c {
	case ConflictSkip:
		return "skip"
	case ConflictOverwrite:
		return "overwrite"
	case ConflictDuplicate:
		return "duplicate"
	}
	return fmt.Sprintf("ConflictPolicy(%d)", int(c))
}

// ParseConflictPolicy is the inverse of ConflictPolicy.String.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	for _, c := range []ConflictPolicy{ConflictSkip, ConflictOverwrite, ConflictDuplicate} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown conflict policy %q", s)
}

// OperationState is the tag of the Operation union.
type OperationState int

// Operation states.
const (
	StatePending OperationState = iota
	StateInProgress
	StateDone
	StateFailed
)

func (s OperationState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateInProgress:
		return "in progress"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Operation is one server-side batch job (delete, move, copy), or a synthesized stand-in for backends that work
// synchronously. Progress only means something while InProgress; Err only when Failed.
type Operation struct {
	ID       string
	State    OperationState
	Progress int
	Err      error
}

// OperationPending returns a job the backend accepted but has not started.
func OperationPending(id string) Operation {
	return Operation{ID: id, State: StatePending}
}

// OperationInProgress returns a running job. Progress is clamped to [0, 100]; 100 yields a Done operation.
func OperationInProgress(id string, progress int) Operation {
	switch {
	case progress >= 100:
		return OperationDone(id)
	case progress < 0:
		progress = 0
	}
	return Operation{ID: id, State: StateInProgress, Progress: progress}
}

// OperationDone returns a finished job.
func OperationDone(id string) Operation {
	return Operation{ID: id, State: StateDone, Progress: 100}
}

// OperationFailed returns a job that stopped with err.
func OperationFailed(id string, err error) Operation {
	if err == nil {
		err = errors.New("operation failed")
	}
	return Operation{ID: id, State: StateFailed, Err: err}
}

// Finished reports whether the job completed successfully.
func (o Operation) Finished() bool {
	return o.State == StateDone
}

// Terminal reports whether the job will not change any more.
func (o Operation) Terminal() bool {
	return o.State == StateDone || o.State == StateFailed
}

func (o Operation) String() string {
	switch o.State {
	case StateInProgress:
		return fmt.Sprintf("%s %s %d%%", o.ID, o.State, o.Progress)
	case StateFailed:
		return fmt.Sprintf("%s %s: %v", o.ID, o.State, o.Err)
	}
	return fmt.Sprintf("%s %s", o.ID, o.State)
}

// AggregateOperations folds ops into a single status: any failure wins, then the least advanced job. No
// operations at all means there is nothing left to wait for.
func AggregateOperations(ops []Operation) Operation {
	if len(ops) == 0 {
		return OperationDone("")
	}
	var failed []error
	agg := ops[0]
	for _, op := range ops {
		if op.State == StateFailed {
			failed = append(failed, op.Err)
			continue
		}
		if progressOf(op) < progressOf(agg) || agg.State == StateFailed {
			agg = op
		}
	}
	if len(failed) > 0 {
		return OperationFailed(agg.ID, errors.Join(failed...))
	}
	return agg
}

func progressOf(o Operation) int {
	switch o.State {
	case StatePending:
		return -1
	case StateDone:
		return 100
	}
	return o.Progress
}
