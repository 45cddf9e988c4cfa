package checker

import (
	"log"

	"github.com/rfielding/kripke-ltl/kripke"
)

// config carries Check's options, built via the functional-options
// pattern — grounded on the constructor-parameter style of
// kripke.NewWorld(procs, chans, rngSeed) in the teacher's engine.go,
// generalised to the idiomatic Go functional-options convention used
// across the retrieved pack (e.g. core.NewGraph(core.WithDirected(true))
// in katalvlaran-lvlath/core).
type config struct {
	logger      *log.Logger
	stutterFree bool
	maxStates   int // 0 means unbounded
}

// Option configures Check.
type Option func(*config)

// WithLogger attaches a logger that Check writes stage-progress lines
// to. A nil logger (the default) disables logging entirely.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStutterFree forwards to kripke.WithStutterFree when lifting the
// model: a terminal state is rejected with *kripke.ErrTerminalState
// instead of silently self-looped.
func WithStutterFree(on bool) Option {
	return func(c *config) { c.stutterFree = on }
}

// WithMaxStates bounds the number of product-automaton states: Check
// builds the product, and if it has more than n states returns
// *ErrStateSpaceExhausted before the emptiness search. 0 (the default)
// means unbounded.
func WithMaxStates(n int) Option {
	return func(c *config) { c.maxStates = n }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *config) log(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func (c *config) liftOptions() []kripke.LiftOption {
	return []kripke.LiftOption{kripke.WithStutterFree(c.stutterFree)}
}
