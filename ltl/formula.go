// Package ltl implements the recursive LTL formula tree: constructors,
// structural equality/hashing, negation-normal form, and syntactic
// simplification. It performs no evaluation; see package prop and
// package trace for that.
package ltl

import (
	"fmt"

	"github.com/rfielding/kripke-ltl/prop"
)

// Identifiable is the constraint a formula's proposition type must
// satisfy: the core only ever compares propositions by identity.
type Identifiable interface {
	ID() prop.PID
}

// Formula is an immutable LTL formula over proposition type P. Values
// are compared and hashed structurally via Key(); two formulae with
// equal Key() are interchangeable everywhere in this module.
type Formula[P Identifiable] interface {
	// isFormula takes P so that the method set mentions P, which lets
	// the compiler infer P from a Formula[P] argument.
	isFormula(P)
	// Key returns a canonical, collision-free string identity for the
	// formula, used as a map key throughout the tableau and automaton
	// construction.
	Key() string
	fmt.Stringer
}

// BoolF is the boolean-constant leaf.
type BoolF[P Identifiable] bool

func (BoolF[P]) isFormula(P)     {}
func (b BoolF[P]) Key() string   { return fmt.Sprintf("b(%t)", bool(b)) }
func (b BoolF[P]) String() string {
	if b {
		return "⊤"
	}
	return "⊥"
}

// Bool constructs the boolean-constant leaf.
func Bool[P Identifiable](b bool) Formula[P] { return BoolF[P](b) }

// AtomF is an atomic-proposition leaf.
type AtomF[P Identifiable] struct{ Prop P }

func (AtomF[P]) isFormula(P)       {}
func (a AtomF[P]) Key() string     { return fmt.Sprintf("a(%s)", a.Prop.ID()) }
func (a AtomF[P]) String() string  { return string(a.Prop.ID()) }

// Atom constructs an atomic-proposition leaf.
func Atom[P Identifiable](p P) Formula[P] { return AtomF[P]{Prop: p} }

// NotF is logical negation.
type NotF[P Identifiable] struct{ Sub Formula[P] }

func (NotF[P]) isFormula(P)      {}
func (n NotF[P]) Key() string    { return "¬(" + n.Sub.Key() + ")" }
func (n NotF[P]) String() string { return "¬" + n.Sub.String() }

// Not constructs logical negation.
func Not[P Identifiable](f Formula[P]) Formula[P] { return NotF[P]{Sub: f} }

// NextF is the X ("next") operator.
type NextF[P Identifiable] struct{ Sub Formula[P] }

func (NextF[P]) isFormula(P)      {}
func (n NextF[P]) Key() string    { return "X(" + n.Sub.Key() + ")" }
func (n NextF[P]) String() string { return "X " + n.Sub.String() }

// Next constructs the X ("next") operator.
func Next[P Identifiable](f Formula[P]) Formula[P] { return NextF[P]{Sub: f} }

// FinallyF is the F ("eventually") operator.
type FinallyF[P Identifiable] struct{ Sub Formula[P] }

func (FinallyF[P]) isFormula(P)      {}
func (n FinallyF[P]) Key() string    { return "F(" + n.Sub.Key() + ")" }
func (n FinallyF[P]) String() string { return "F " + n.Sub.String() }

// Finally constructs the F ("eventually") operator.
func Finally[P Identifiable](f Formula[P]) Formula[P] { return FinallyF[P]{Sub: f} }

// GloballyF is the G ("always") operator.
type GloballyF[P Identifiable] struct{ Sub Formula[P] }

func (GloballyF[P]) isFormula(P)      {}
func (n GloballyF[P]) Key() string    { return "G(" + n.Sub.Key() + ")" }
func (n GloballyF[P]) String() string { return "G " + n.Sub.String() }

// Globally constructs the G ("always") operator.
func Globally[P Identifiable](f Formula[P]) Formula[P] { return GloballyF[P]{Sub: f} }

// AndF is logical conjunction.
type AndF[P Identifiable] struct{ Left, Right Formula[P] }

func (AndF[P]) isFormula(P)      {}
func (a AndF[P]) Key() string    { return "and(" + a.Left.Key() + "," + a.Right.Key() + ")" }
func (a AndF[P]) String() string { return "(" + a.Left.String() + " ∧ " + a.Right.String() + ")" }

// And constructs logical conjunction.
func And[P Identifiable](l, r Formula[P]) Formula[P] { return AndF[P]{Left: l, Right: r} }

// OrF is logical disjunction.
type OrF[P Identifiable] struct{ Left, Right Formula[P] }

func (OrF[P]) isFormula(P)      {}
func (o OrF[P]) Key() string    { return "or(" + o.Left.Key() + "," + o.Right.Key() + ")" }
func (o OrF[P]) String() string { return "(" + o.Left.String() + " ∨ " + o.Right.String() + ")" }

// Or constructs logical disjunction.
func Or[P Identifiable](l, r Formula[P]) Formula[P] { return OrF[P]{Left: l, Right: r} }

// ImpliesF is logical implication.
type ImpliesF[P Identifiable] struct{ Left, Right Formula[P] }

func (ImpliesF[P]) isFormula(P)      {}
func (i ImpliesF[P]) Key() string    { return "imp(" + i.Left.Key() + "," + i.Right.Key() + ")" }
func (i ImpliesF[P]) String() string { return "(" + i.Left.String() + " → " + i.Right.String() + ")" }

// Implies constructs logical implication.
func Implies[P Identifiable](l, r Formula[P]) Formula[P] { return ImpliesF[P]{Left: l, Right: r} }

// UntilF is the strong-until operator (Left U Right).
type UntilF[P Identifiable] struct{ Left, Right Formula[P] }

func (UntilF[P]) isFormula(P)      {}
func (u UntilF[P]) Key() string    { return "U(" + u.Left.Key() + "," + u.Right.Key() + ")" }
func (u UntilF[P]) String() string { return "(" + u.Left.String() + " U " + u.Right.String() + ")" }

// Until constructs the strong-until operator (l U r).
func Until[P Identifiable](l, r Formula[P]) Formula[P] { return UntilF[P]{Left: l, Right: r} }

// WeakUntilF is the weak-until operator (Left W Right).
type WeakUntilF[P Identifiable] struct{ Left, Right Formula[P] }

func (WeakUntilF[P]) isFormula(P)      {}
func (w WeakUntilF[P]) Key() string    { return "W(" + w.Left.Key() + "," + w.Right.Key() + ")" }
func (w WeakUntilF[P]) String() string { return "(" + w.Left.String() + " W " + w.Right.String() + ")" }

// WeakUntil constructs the weak-until operator (l W r).
func WeakUntil[P Identifiable](l, r Formula[P]) Formula[P] { return WeakUntilF[P]{Left: l, Right: r} }

// ReleaseF is the release operator (Left R Right).
type ReleaseF[P Identifiable] struct{ Left, Right Formula[P] }

func (ReleaseF[P]) isFormula(P)      {}
func (r ReleaseF[P]) Key() string    { return "R(" + r.Left.Key() + "," + r.Right.Key() + ")" }
func (r ReleaseF[P]) String() string { return "(" + r.Left.String() + " R " + r.Right.String() + ")" }

// Release constructs the release operator (l R r).
func Release[P Identifiable](l, r Formula[P]) Formula[P] { return ReleaseF[P]{Left: l, Right: r} }

// Equal reports whether two formulae are structurally identical.
func Equal[P Identifiable](a, b Formula[P]) bool { return a.Key() == b.Key() }

// Depth returns the syntactic nesting depth of f (a leaf has depth 0).
func Depth[P Identifiable](f Formula[P]) int {
	max2 := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}
	switch n := f.(type) {
	case BoolF[P], AtomF[P]:
		return 0
	case NotF[P]:
		return 1 + Depth[P](n.Sub)
	case NextF[P]:
		return 1 + Depth[P](n.Sub)
	case FinallyF[P]:
		return 1 + Depth[P](n.Sub)
	case GloballyF[P]:
		return 1 + Depth[P](n.Sub)
	case AndF[P]:
		return 1 + max2(Depth[P](n.Left), Depth[P](n.Right))
	case OrF[P]:
		return 1 + max2(Depth[P](n.Left), Depth[P](n.Right))
	case ImpliesF[P]:
		return 1 + max2(Depth[P](n.Left), Depth[P](n.Right))
	case UntilF[P]:
		return 1 + max2(Depth[P](n.Left), Depth[P](n.Right))
	case WeakUntilF[P]:
		return 1 + max2(Depth[P](n.Left), Depth[P](n.Right))
	case ReleaseF[P]:
		return 1 + max2(Depth[P](n.Left), Depth[P](n.Right))
	default:
		panic(fmt.Sprintf("ltl: Depth: unhandled formula type %T", f))
	}
}

// Subformulae returns the finite set of subformulae of f, including f
// itself, deduplicated by Key() and returned in a deterministic order
// (stable w.r.t. repeated calls on equal input).
func Subformulae[P Identifiable](f Formula[P]) []Formula[P] {
	seen := make(map[string]bool)
	var out []Formula[P]
	var walk func(Formula[P])
	walk = func(g Formula[P]) {
		if seen[g.Key()] {
			return
		}
		seen[g.Key()] = true
		out = append(out, g)
		switch n := g.(type) {
		case NotF[P]:
			walk(n.Sub)
		case NextF[P]:
			walk(n.Sub)
		case FinallyF[P]:
			walk(n.Sub)
		case GloballyF[P]:
			walk(n.Sub)
		case AndF[P]:
			walk(n.Left)
			walk(n.Right)
		case OrF[P]:
			walk(n.Left)
			walk(n.Right)
		case ImpliesF[P]:
			walk(n.Left)
			walk(n.Right)
		case UntilF[P]:
			walk(n.Left)
			walk(n.Right)
		case WeakUntilF[P]:
			walk(n.Left)
			walk(n.Right)
		case ReleaseF[P]:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(f)
	return out
}

// Atoms returns the distinct proposition identifiers occurring in f.
func Atoms[P Identifiable](f Formula[P]) []prop.PID {
	seen := make(map[prop.PID]bool)
	var out []prop.PID
	for _, sub := range Subformulae(f) {
		if a, ok := sub.(AtomF[P]); ok {
			id := a.Prop.ID()
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
