package kripke

import "fmt"

// ErrInvalidStructure reports that a Model violates a structural
// invariant (an initial or successor state was never declared). It
// corresponds to the invalid_kripke_structure error variant of
// spec.md §7's error taxonomy.
type ErrInvalidStructure struct {
	Reason string
}

func (e *ErrInvalidStructure) Error() string {
	return fmt.Sprintf("invalid kripke structure: %s", e.Reason)
}

// ErrTerminalState reports that a state has no successors and the
// caller opted into WithStutterFree, so Lift refuses to silently
// self-loop it. See Lift and WithStutterFree.
type ErrTerminalState struct {
	State StateID
}

func (e *ErrTerminalState) Error() string {
	return fmt.Sprintf("terminal state %s has no successors and stutter-free lifting was requested", e.State)
}
