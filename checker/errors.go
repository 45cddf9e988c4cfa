package checker

import "fmt"

// ErrStateSpaceExhausted reports that the built product automaton has
// more states than WithMaxStates' bound.
type ErrStateSpaceExhausted struct {
	Explored int
	Limit    int
}

func (e *ErrStateSpaceExhausted) Error() string {
	return fmt.Sprintf("checker: state space exhausted: explored %d states, limit %d", e.Explored, e.Limit)
}
