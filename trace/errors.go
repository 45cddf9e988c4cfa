package trace

import (
	"errors"
	"fmt"

	"github.com/rfielding/kripke-ltl/prop"
)

// ErrEmptyTrace is returned when Evaluate is given a zero-length trace.
var ErrEmptyTrace = errors.New("trace: empty trace")

// ErrInconclusive reports that the end of a finite trace was reached
// with a pending X (Next) obligation still unresolved — neither the
// true nor false end-of-trace rule applies to it.
type ErrInconclusive struct {
	Detail string
}

func (e *ErrInconclusive) Error() string {
	return fmt.Sprintf("trace: inconclusive evaluation: %s", e.Detail)
}

// ErrPropositionEvaluation wraps an error returned by a proposition's
// own Evaluate method, naming which proposition failed.
type ErrPropositionEvaluation struct {
	PID prop.PID
	Err error
}

func (e *ErrPropositionEvaluation) Error() string {
	return fmt.Sprintf("trace: proposition %s evaluation failed: %v", e.PID, e.Err)
}

func (e *ErrPropositionEvaluation) Unwrap() error { return e.Err }
