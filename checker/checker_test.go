package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/kripke-ltl/checker"
	"github.com/rfielding/kripke-ltl/kripke"
	"github.com/rfielding/kripke-ltl/ltl"
	"github.com/rfielding/kripke-ltl/prop"
)

func atom(id string) ltl.Formula[prop.PID] { return ltl.Atom[prop.PID](prop.PID(id)) }

// threeCycle builds S1/S2/S3's model: s0 -> s1 -> s2 -> s0, labelled
// {p} / {q} / {p, r}.
func threeCycle(t *testing.T) *kripke.Graph {
	t.Helper()
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.Label("s1", "q")
	g.Label("s2", "p")
	g.Label("s2", "r")
	g.AddEdge("s0", "s1")
	g.AddEdge("s1", "s2")
	g.AddEdge("s2", "s0")
	g.SetInitial("s0")
	return g
}

func TestS1GFpHoldsOnThreeCycle(t *testing.T) {
	g := threeCycle(t)
	psi := ltl.Globally(ltl.Finally(atom("p")))
	res, err := checker.Check[prop.PID](psi, g)
	require.NoError(t, err)
	assert.True(t, res.Holds())
	assert.Nil(t, res.Counterexample())
}

func TestS2GpFailsOnThreeCycle(t *testing.T) {
	g := threeCycle(t)
	psi := ltl.Globally(atom("p"))
	res, err := checker.Check[prop.PID](psi, g)
	require.NoError(t, err)
	assert.False(t, res.Holds())
	require.NotNil(t, res.Counterexample())
	assert.Contains(t, res.Counterexample().Cycle, kripke.StateID("s1"))
}

func TestS3FqHoldsOnThreeCycle(t *testing.T) {
	g := threeCycle(t)
	psi := ltl.Finally(atom("q"))
	res, err := checker.Check[prop.PID](psi, g)
	require.NoError(t, err)
	assert.True(t, res.Holds())
}

// pLoopNoR builds S4's model: s0 (p) -> s1 (empty) -> s0, a cycle with
// no r anywhere.
func pLoopNoR(t *testing.T) *kripke.Graph {
	t.Helper()
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.AddState("s1")
	g.AddEdge("s0", "s1")
	g.AddEdge("s1", "s0")
	g.SetInitial("s0")
	return g
}

func TestS4UntilFailsWithoutR(t *testing.T) {
	g := pLoopNoR(t)
	psi := ltl.Until(atom("p"), atom("r"))
	res, err := checker.Check[prop.PID](psi, g)
	require.NoError(t, err)
	assert.False(t, res.Holds())
	require.NotNil(t, res.Counterexample())
}

// selfLoopP is S5's model: a single state s0 (p), self-looping.
func selfLoopP(t *testing.T) *kripke.Graph {
	t.Helper()
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.AddEdge("s0", "s0")
	g.SetInitial("s0")
	return g
}

func TestS5GpHoldsOnSelfLoop(t *testing.T) {
	g := selfLoopP(t)
	psi := ltl.Globally(atom("p"))
	res, err := checker.Check[prop.PID](psi, g)
	require.NoError(t, err)
	assert.True(t, res.Holds())
}

func TestS5FqFailsOnSelfLoop(t *testing.T) {
	g := selfLoopP(t)
	psi := ltl.Finally(atom("q"))
	res, err := checker.Check[prop.PID](psi, g)
	require.NoError(t, err)
	assert.False(t, res.Holds())
	require.NotNil(t, res.Counterexample())
	assert.Equal(t, []kripke.StateID{"s0"}, res.Counterexample().Cycle)
}

func TestFastPathAtomHoldsWhenEveryInitialLabelled(t *testing.T) {
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.SetInitial("s0")
	res, err := checker.Check[prop.PID](atom("p"), g)
	require.NoError(t, err)
	assert.True(t, res.Holds())
	assert.Nil(t, res.Counterexample())
}

func TestFastPathNegatedAtomFailsWhenLabelled(t *testing.T) {
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.SetInitial("s0")
	res, err := checker.Check[prop.PID](ltl.Not(atom("p")), g)
	require.NoError(t, err)
	assert.False(t, res.Holds())
	require.NotNil(t, res.Counterexample())
	assert.Equal(t, kripke.StateID("s0"), res.Counterexample().Prefix[0])
}

func TestEmptyInitialStatesHoldsVacuously(t *testing.T) {
	g := kripke.NewGraph()
	g.AddState("s0")
	res, err := checker.Check[prop.PID](atom("p"), g)
	require.NoError(t, err)
	assert.True(t, res.Holds())
	assert.Nil(t, res.Counterexample())
}

// invalidModel is a hand-rolled kripke.Model (not built through
// kripke.Graph's auto-creating builder) exercising an undeclared
// successor, to confirm Check validates any Model, not just Graph.
type invalidModel struct{}

func (invalidModel) States() []kripke.StateID        { return []kripke.StateID{"s0"} }
func (invalidModel) InitialStates() []kripke.StateID { return []kripke.StateID{"s0"} }
func (invalidModel) Successors(s kripke.StateID) []kripke.StateID {
	return []kripke.StateID{"s1"} // s1 is never declared in States()
}
func (invalidModel) Labels(s kripke.StateID) []prop.PID { return nil }

func TestCheckRejectsInvalidKripkeStructure(t *testing.T) {
	_, err := checker.Check[prop.PID](ltl.Globally(atom("p")), invalidModel{})
	require.Error(t, err)
	var invalid *kripke.ErrInvalidStructure
	require.ErrorAs(t, err, &invalid)
}

func TestLassoStringRendersLoopSuffix(t *testing.T) {
	l := checker.Lasso[kripke.StateID]{
		Prefix: []kripke.StateID{"s0", "s1"},
		Cycle:  []kripke.StateID{"s2", "s3"},
	}
	assert.Equal(t, "s0 -> s1 -> (s2 -> s3)∞", l.String())
}

func TestLassoStringEmptyPrefix(t *testing.T) {
	l := checker.Lasso[kripke.StateID]{Cycle: []kripke.StateID{"s0"}}
	assert.Equal(t, "(s0)∞", l.String())
}

func TestLassoStringEmptyCycle(t *testing.T) {
	l := checker.Lasso[kripke.StateID]{Prefix: []kripke.StateID{"s0", "s1"}}
	assert.Equal(t, "s0 -> s1", l.String())
}
