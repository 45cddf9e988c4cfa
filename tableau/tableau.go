// Package tableau builds the tableau graph of an NNF LTL formula: its
// nodes are consistent subsets of the closure that fix the truth value
// of every atom of the formula (p or ¬p is always present), and its
// transitions enforce the X-expansion obligations carried in each
// node's "next" set. See spec.md §4.5.
//
// The construction follows the teacher's graph-building idiom in
// kripke/ctl.go (auto-creating, interned states addressed by a
// canonical key) generalised from caller-supplied names to
// closure-subset identities.
package tableau

import (
	"fmt"
	"sort"

	"github.com/rfielding/kripke-ltl/automaton"
	"github.com/rfielding/kripke-ltl/ltl"
	"github.com/rfielding/kripke-ltl/prop"
)

// formula is shorthand for the canonical (PID-keyed) formula type
// every tableau operates over.
type formula = ltl.Formula[prop.PID]

// FormulaSet is a set of formulae keyed by their canonical Key().
type FormulaSet map[string]formula

func newFormulaSet(fs ...formula) FormulaSet {
	s := make(FormulaSet, len(fs))
	for _, f := range fs {
		s[f.Key()] = f
	}
	return s
}

func (s FormulaSet) clone() FormulaSet {
	out := make(FormulaSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (s FormulaSet) add(f formula) FormulaSet {
	if _, ok := s[f.Key()]; ok {
		return s
	}
	out := s.clone()
	out[f.Key()] = f
	return out
}

func (s FormulaSet) remove(f formula) FormulaSet {
	if _, ok := s[f.Key()]; !ok {
		return s
	}
	out := s.clone()
	delete(out, f.Key())
	return out
}

func (s FormulaSet) Has(f formula) bool {
	_, ok := s[f.Key()]
	return ok
}

func (s FormulaSet) sortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Node is a tableau node: a pair of formula sets. Current holds every
// closure formula (literal or compound) that has been established to
// hold now; Next holds the X-obligations that must hold at the
// successor.
type Node struct {
	Current FormulaSet
	Next    FormulaSet
}

// nodeKey is the canonical identity of a node: its current and next
// sets rendered as sorted, concatenated formula keys. Two nodes with
// equal nodeKey are the same tableau state.
func nodeKey(n Node) string {
	return "C{" + joinKeys(n.Current) + "}N{" + joinKeys(n.Next) + "}"
}

func joinKeys(s FormulaSet) string {
	keys := s.sortedKeys()
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ","
		}
		out += k
	}
	return out
}

// Graph is the tableau graph: a generalised-Büchi-automaton shape
// (minus acceptance, which AcceptanceSets derives separately per
// spec.md §4.6) whose states are tableau Nodes.
type Graph struct {
	Nodes   map[string]Node
	order   []string // insertion order, for determinism
	Initial []string
	Trans   map[string][]automaton.Edge[string]
	AP      []prop.PID
}

// Build constructs the tableau of the NNF formula psi over the atom
// set ap. psi must already be in negation normal form (callers run
// ltl.NNF first); Build does not check this.
func Build(psi formula, ap []prop.PID) *Graph {
	g := &Graph{
		Nodes: make(map[string]Node),
		Trans: make(map[string][]automaton.Edge[string]),
		AP:    ap,
	}

	// Every node fixes the truth value of every atom of psi: p ∨ ¬p is
	// expanded alongside each obligation set, so a node's positive-atom
	// label also pins the atoms it leaves out to false.
	var fix []formula
	for _, p := range ltl.Atoms(psi) {
		fix = append(fix, ltl.Or[prop.PID](ltl.Atom[prop.PID](p), ltl.Not(ltl.Atom[prop.PID](p))))
	}
	for _, n := range expand(newFormulaSet(append(fix, psi)...), newFormulaSet(), newFormulaSet()) {
		key := g.intern(n)
		g.Initial = append(g.Initial, key)
	}

	var worklist []string
	seen := make(map[string]bool)
	for _, k := range g.Initial {
		if !seen[k] {
			seen[k] = true
			worklist = append(worklist, k)
		}
	}
	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		node := g.Nodes[key]

		label := positiveAtoms(node.Current, ap)
		obligations := node.Next
		for _, f := range fix {
			obligations = obligations.add(f)
		}
		for _, succ := range expand(obligations, newFormulaSet(), newFormulaSet()) {
			succKey := g.intern(succ)
			g.Trans[key] = append(g.Trans[key], automaton.Edge[string]{Label: label, To: succKey})
			if !seen[succKey] {
				seen[succKey] = true
				worklist = append(worklist, succKey)
			}
		}
	}
	return g
}

// intern registers a node (if new) and returns its canonical key.
func (g *Graph) intern(n Node) string {
	k := nodeKey(n)
	if _, ok := g.Nodes[k]; !ok {
		g.Nodes[k] = n
		g.order = append(g.order, k)
	}
	return k
}

// Keys returns the tableau's node keys in deterministic (insertion)
// order.
func (g *Graph) Keys() []string { return append([]string(nil), g.order...) }

// positiveAtoms returns the positive atoms of ap present in current —
// the label the tableau emits on edges leaving a node with this
// Current set (spec.md §4.5: "a node's label is the set of positive
// atoms in its current").
func positiveAtoms(current FormulaSet, ap []prop.PID) automaton.Symbol {
	present := make(map[prop.PID]bool)
	for _, f := range current {
		if a, ok := f.(ltl.AtomF[prop.PID]); ok {
			present[a.Prop] = true
		}
	}
	var pids []prop.PID
	for _, p := range ap {
		if present[p] {
			pids = append(pids, p)
		}
	}
	return automaton.NewSymbol(pids...)
}

// expand saturates a to-process obligation set into the saturated,
// consistent nodes it gives rise to via the alpha/beta tableau rules
// of spec.md §4.5. toProcess holds formulae not yet accounted for;
// done accumulates every formula (literal or compound) established to
// hold now, becoming the resulting node's Current; next accumulates
// X-obligations for the successor.
func expand(toProcess, done, next FormulaSet) []Node {
	for _, f := range toProcess {
		if done.Has(f) {
			return expand(toProcess.remove(f), done, next)
		}

		rest := toProcess.remove(f)
		done2 := done.add(f)

		switch n := f.(type) {
		case ltl.BoolF[prop.PID]:
			if !bool(n) {
				return nil // `false` ever required: inconsistent branch
			}
			return expand(rest, done2, next)
		case ltl.AtomF[prop.PID]:
			return expand(rest, done2, next)
		case ltl.NotF[prop.PID]:
			// NNF input: Not only ever wraps an atom, so it's a literal.
			return expand(rest, done2, next)
		case ltl.AndF[prop.PID]:
			return expand(rest.add(n.Left).add(n.Right), done2, next)
		case ltl.OrF[prop.PID]:
			left := expand(rest.add(n.Left), done2, next)
			right := expand(rest.add(n.Right), done2, next)
			return append(left, right...)
		case ltl.ImpliesF[prop.PID]:
			// Treated as sugar here too, in case a caller builds a
			// tableau without running NNF's implies-expansion first.
			expanded := ltl.Or[prop.PID](ltl.Not(n.Left), n.Right)
			return expand(rest.add(expanded), done2, next)
		case ltl.NextF[prop.PID]:
			return expand(rest, done2, next.add(n.Sub))
		case ltl.FinallyF[prop.PID]:
			// F phi == true U phi, expanded as an auxiliary obligation
			// while keeping "F phi" itself in done. Successor nodes carry
			// only the auxiliary "true U phi", which is what C6 tracks.
			return expand(rest.add(ltl.Until[prop.PID](ltl.Bool[prop.PID](true), n.Sub)), done2, next)
		case ltl.GloballyF[prop.PID]:
			// G phi == false R phi
			return expand(rest.add(ltl.Release[prop.PID](ltl.Bool[prop.PID](false), n.Sub)), done2, next)
		case ltl.UntilF[prop.PID]:
			// phi U psi == psi OR (phi AND X(phi U psi))
			branchNow := expand(rest.add(n.Right), done2, next)
			branchLater := expand(rest.add(n.Left), done2, next.add(f))
			return append(branchNow, branchLater...)
		case ltl.WeakUntilF[prop.PID]:
			// phi W psi == psi OR (phi AND X(phi W psi)); no acceptance
			// set is derived for W (see package tableau's AcceptanceSets).
			branchNow := expand(rest.add(n.Right), done2, next)
			branchLater := expand(rest.add(n.Left), done2, next.add(f))
			return append(branchNow, branchLater...)
		case ltl.ReleaseF[prop.PID]:
			// phi R psi == psi AND (phi OR X(phi R psi))
			branchNow := expand(rest.add(n.Right).add(n.Left), done2, next)
			branchLater := expand(rest.add(n.Right), done2, next.add(f))
			return append(branchNow, branchLater...)
		default:
			panic(fmt.Sprintf("tableau: expand: unhandled formula type %T", f))
		}
	}

	if !consistent(done) {
		return nil
	}
	return []Node{{Current: done, Next: next}}
}

// consistent reports whether done contains no contradictory pair p,
// ¬p and no literal `false`.
func consistent(done FormulaSet) bool {
	for _, f := range done {
		if b, ok := f.(ltl.BoolF[prop.PID]); ok && !bool(b) {
			return false
		}
	}
	for _, f := range done {
		n, ok := f.(ltl.NotF[prop.PID])
		if !ok {
			continue
		}
		a, ok := n.Sub.(ltl.AtomF[prop.PID])
		if !ok {
			continue
		}
		if done.Has(ltl.Atom[prop.PID](a.Prop)) {
			return false
		}
	}
	return true
}
