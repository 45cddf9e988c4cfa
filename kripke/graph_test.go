package kripke_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/kripke-ltl/kripke"
	"github.com/rfielding/kripke-ltl/prop"
)

func TestGraphAddStateIsIdempotent(t *testing.T) {
	g := kripke.NewGraph()
	id1 := g.AddState("s0")
	id2 := g.AddState("s0")
	assert.Equal(t, id1, id2)
	assert.Equal(t, []kripke.StateID{"s0"}, g.States())
}

func TestGraphLabelAutoCreatesState(t *testing.T) {
	g := kripke.NewGraph()
	g.Label("s0", "p")
	assert.Equal(t, []kripke.StateID{"s0"}, g.States())
	assert.Contains(t, g.Labels("s0"), prop.PID("p"))
}

func TestGraphInitialStatesPreservesInsertionOrder(t *testing.T) {
	g := kripke.NewGraph()
	g.AddState("s1")
	g.AddState("s0")
	g.SetInitial("s1")
	g.SetInitial("s0")
	assert.Equal(t, []kripke.StateID{"s1", "s0"}, g.InitialStates())
}

func TestGraphSuccessors(t *testing.T) {
	g := kripke.NewGraph()
	g.AddEdge("s0", "s1")
	g.AddEdge("s0", "s2")
	assert.ElementsMatch(t, []kripke.StateID{"s1", "s2"}, g.Successors("s0"))
	assert.Empty(t, g.Successors("s1"))
}

// Every graph built through the public builder API is structurally
// well-formed by construction (AddEdge/SetInitial/Label all
// auto-create their targets), so Validate always succeeds for it;
// the invariants it checks guard a Model implemented some other way.
func TestGraphValidatePassesForGraphsBuiltThroughPublicAPI(t *testing.T) {
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.AddEdge("s0", "s1")
	g.AddEdge("s1", "s0")
	g.SetInitial("s0")
	assert.NoError(t, g.Validate())
}

func TestLiftSelfLoopsTerminalStateByDefault(t *testing.T) {
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.SetInitial("s0")

	ba, err := kripke.Lift(g)
	require.NoError(t, err)

	edges := ba.Successors("s0")
	require.Len(t, edges, 1)
	assert.Equal(t, kripke.StateID("s0"), edges[0].To)
	assert.True(t, ba.Accept["s0"])
	assert.Equal(t, []kripke.StateID{"s0"}, ba.Initial)
}

func TestLiftStutterFreeRejectsTerminalState(t *testing.T) {
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.SetInitial("s0")

	_, err := kripke.Lift(g, kripke.WithStutterFree(true))
	require.Error(t, err)

	var terminal *kripke.ErrTerminalState
	require.ErrorAs(t, err, &terminal)
	assert.Equal(t, kripke.StateID("s0"), terminal.State)
}

func TestLiftPreservesEdgesForNonTerminalStates(t *testing.T) {
	g := kripke.NewGraph()
	g.Label("s0", "p")
	g.Label("s1", "q")
	g.AddEdge("s0", "s1")
	g.AddEdge("s1", "s0")
	g.SetInitial("s0")

	ba, err := kripke.Lift(g, kripke.WithStutterFree(true))
	require.NoError(t, err)

	s0edges := ba.Successors("s0")
	require.Len(t, s0edges, 1)
	assert.Equal(t, kripke.StateID("s1"), s0edges[0].To)
	assert.True(t, s0edges[0].Label.Has("p"))
	assert.False(t, s0edges[0].Label.Has("q"))
}

func TestErrInvalidStructureMessage(t *testing.T) {
	err := &kripke.ErrInvalidStructure{Reason: "example"}
	assert.Contains(t, err.Error(), "example")
}
