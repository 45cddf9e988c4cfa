package automaton_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/kripke-ltl/automaton"
	"github.com/rfielding/kripke-ltl/prop"
)

func identity(x string) string { return x }

func TestDegeneralizeSingleSetIsIdentity(t *testing.T) {
	g := automaton.NewGBA[string](identity)
	g.AddEdge("s0", automaton.NewSymbol("p"), "s0")
	g.SetInitial("s0")
	g.AddAcceptanceSet(map[string]bool{"s0": true})

	ba := automaton.Degeneralize(g)
	require.Len(t, ba.States, 1)
	assert.True(t, ba.Accept[automaton.Pair[string, int]{First: "s0", Second: 0}])
}

func TestDegeneralizeRotatesThroughAllSets(t *testing.T) {
	// Two states s0,s1 each in one of two acceptance sets; a run
	// visiting both infinitely often must be accepted by the BA.
	g := automaton.NewGBA[string](identity)
	g.AddEdge("s0", automaton.NewSymbol(), "s1")
	g.AddEdge("s1", automaton.NewSymbol(), "s0")
	g.SetInitial("s0")
	g.AddAcceptanceSet(map[string]bool{"s0": true})
	g.AddAcceptanceSet(map[string]bool{"s1": true})

	ba := automaton.Degeneralize(g)
	run, ok := automaton.NestedDFS(ba)
	require.True(t, ok, "expected an accepting lasso")
	assert.NotEmpty(t, run.Cycle)
}

func TestNestedDFSFindsSelfLoop(t *testing.T) {
	b := automaton.NewBA[string](identity)
	b.AddEdge("s0", automaton.NewSymbol("p"), "s0")
	b.SetInitial("s0")
	b.SetAccepting("s0")

	run, ok := automaton.NestedDFS(b)
	require.True(t, ok)
	assert.Equal(t, []string{"s0"}, run.Cycle)
}

func TestNestedDFSEmptyWhenNoAcceptingCycle(t *testing.T) {
	b := automaton.NewBA[string](identity)
	b.AddEdge("s0", automaton.NewSymbol(), "s1")
	// s1 is a dead end: no outgoing edges, so no accepting cycle exists.
	b.AddState("s1")
	b.SetInitial("s0")
	b.SetAccepting("s1")

	_, ok := automaton.NestedDFS(b)
	assert.False(t, ok)
}

func TestProductAgreesOnRelevantAtomsOnly(t *testing.T) {
	m := automaton.NewBA[string](identity)
	m.AddEdge("m0", automaton.NewSymbol("p", "irrelevant"), "m0")
	m.SetInitial("m0")
	m.SetAccepting("m0")

	a := automaton.NewBA[string](identity)
	a.AddEdge("a0", automaton.NewSymbol("p"), "a0")
	a.SetInitial("a0")
	a.SetAccepting("a0")

	prod := automaton.Product(m, a, []prop.PID{"p"})
	assert.Len(t, prod.States, 1, "irrelevant atom must not block the product transition")

	run, ok := automaton.NestedDFS(prod)
	require.True(t, ok)
	assert.NotEmpty(t, run.Cycle)
}

func TestProductRejectsDisagreeingRelevantAtoms(t *testing.T) {
	m := automaton.NewBA[string](identity)
	m.AddEdge("m0", automaton.NewSymbol("p"), "m1")
	m.AddState("m1")
	m.SetInitial("m0")

	a := automaton.NewBA[string](identity)
	a.AddEdge("a0", automaton.NewSymbol(), "a1") // requires ¬p
	a.AddState("a1")
	a.SetInitial("a0")

	prod := automaton.Product(m, a, []prop.PID{"p"})
	// Only the initial pair is reachable; the mismatched transition is dropped.
	assert.Len(t, prod.States, 1)
}

func TestSymbolAgreesOn(t *testing.T) {
	s1 := automaton.NewSymbol("p", "q")
	s2 := automaton.NewSymbol("p", "r")
	assert.True(t, s1.AgreesOn(s2, []prop.PID{"p"}))
	assert.False(t, s1.AgreesOn(s2, []prop.PID{"p", "q"}))
}

func ExampleDegeneralize() {
	g := automaton.NewGBA[string](identity)
	g.AddEdge("s0", automaton.NewSymbol(), "s0")
	g.SetInitial("s0")
	g.AddAcceptanceSet(map[string]bool{"s0": true})
	ba := automaton.Degeneralize(g)
	fmt.Println(len(ba.States))
	// Output: 1
}
