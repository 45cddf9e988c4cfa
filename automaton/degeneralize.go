package automaton

import "fmt"

// Pair is a generic product-style composite state.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// Degeneralize turns a GBA with k acceptance sets into an equivalent
// BA with a single acceptance set, per spec.md §4.7: states become
// (q, i) with 0 ≤ i < k, the index rotates to i+1 (mod k) whenever the
// automaton is "about to visit" F_{i+1 mod k}, and (q, 0) is accepting.
// If k == 0 (no liveness subformulae were found), the GBA is given a
// single trivial acceptance set equal to all states by the caller
// (spec.md §4.6) before this is invoked; Degeneralize itself requires
// k ≥ 1.
func Degeneralize[S comparable](g *GBA[S]) *BA[Pair[S, int]] {
	k := len(g.Accept)
	if k == 0 {
		panic("automaton: Degeneralize: GBA has no acceptance sets")
	}
	key := func(p Pair[S, int]) string { return fmt.Sprintf("%s#%d", g.Key(p.First), p.Second) }
	b := NewBA[Pair[S, int]](key)

	if k == 1 {
		// Degeneralisation is the identity: drop the index, keep i == 0
		// throughout, and F_0 (== the sole acceptance set) is accepting.
		for _, s := range g.States {
			b.AddState(Pair[S, int]{First: s, Second: 0})
		}
		for _, s := range g.Initial {
			b.SetInitial(Pair[S, int]{First: s, Second: 0})
		}
		for _, s := range g.States {
			for _, e := range g.Trans[s] {
				b.AddEdge(Pair[S, int]{First: s, Second: 0}, e.Label, Pair[S, int]{First: e.To, Second: 0})
			}
		}
		for s := range g.Accept[0] {
			b.SetAccepting(Pair[S, int]{First: s, Second: 0})
		}
		return b
	}

	for _, s := range g.States {
		for i := 0; i < k; i++ {
			b.AddState(Pair[S, int]{First: s, Second: i})
		}
	}
	for _, s := range g.Initial {
		b.SetInitial(Pair[S, int]{First: s, Second: 0})
	}
	for _, s := range g.States {
		for i := 0; i < k; i++ {
			from := Pair[S, int]{First: s, Second: i}
			for _, e := range g.Trans[s] {
				nextIdx := nextIndex(g, s, i, k)
				b.AddEdge(from, e.Label, Pair[S, int]{First: e.To, Second: nextIdx})
			}
		}
	}
	for _, s := range g.States {
		b.SetAccepting(Pair[S, int]{First: s, Second: 0})
	}
	return b
}

// nextIndex computes the rotated index for a transition taken from
// source state q while the degeneralised automaton is tracking index
// i: the index advances to (i+1) mod k iff q belongs to F_{(i+1) mod k}.
func nextIndex[S comparable](g *GBA[S], q S, i, k int) int {
	want := (i + 1) % k
	if g.Accept[want][q] {
		return want
	}
	return i
}
