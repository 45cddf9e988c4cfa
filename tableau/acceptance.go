package tableau

import (
	"github.com/rfielding/kripke-ltl/ltl"
	"github.com/rfielding/kripke-ltl/prop"
)

// AcceptanceSets derives one acceptance set per liveness subformula of
// psi, per spec.md §4.6: for every αUβ (or F β ≡ true U β) appearing in
// psi's closure, F_i = { n : β ∈ n.Current ∨ (αUβ) ∉ n.Current }.
// Release never contributes an acceptance set — it is a safety
// connective — and neither does weak-until, which is equivalent to a
// disjunction with G. If psi has no liveness subformula at all, the
// single trivial acceptance set {g.Keys()...} (every tableau state) is
// returned, matching a GBA whose sole set is Q.
func AcceptanceSets(g *Graph, psi formula) []map[string]bool {
	var sets []map[string]bool

	for _, sub := range ltl.Subformulae(psi) {
		switch n := sub.(type) {
		case ltl.UntilF[prop.PID]:
			sets = append(sets, buildSet(g, n.Right, sub))
		case ltl.FinallyF[prop.PID]:
			sets = append(sets, buildSet(g, n.Sub, ltl.Until[prop.PID](ltl.Bool[prop.PID](true), n.Sub)))
		}
	}

	if len(sets) == 0 {
		all := make(map[string]bool, len(g.Nodes))
		for _, k := range g.Keys() {
			all[k] = true
		}
		sets = append(sets, all)
	}
	return sets
}

// buildSet computes F_i = { n : beta in n.Current or liveness not in n.Current }.
func buildSet(g *Graph, beta, liveness formula) map[string]bool {
	set := make(map[string]bool)
	for _, k := range g.Keys() {
		node := g.Nodes[k]
		if node.Current.Has(beta) || !node.Current.Has(liveness) {
			set[k] = true
		}
	}
	return set
}
