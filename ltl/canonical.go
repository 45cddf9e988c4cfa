package ltl

import "github.com/rfielding/kripke-ltl/prop"

// Canonicalize erases a formula's proposition payload down to bare
// PIDs. The tableau and automaton construction never evaluate
// propositions — they only compare identities — so every downstream
// stage after the orchestrator's fast path operates on
// Formula[prop.PID] regardless of what proposition type the caller
// used to build φ.
func Canonicalize[P Identifiable](f Formula[P]) Formula[prop.PID] {
	switch n := f.(type) {
	case BoolF[P]:
		return BoolF[prop.PID](n)
	case AtomF[P]:
		return AtomF[prop.PID]{Prop: n.Prop.ID()}
	case NotF[P]:
		return NotF[prop.PID]{Sub: Canonicalize(n.Sub)}
	case NextF[P]:
		return NextF[prop.PID]{Sub: Canonicalize(n.Sub)}
	case FinallyF[P]:
		return FinallyF[prop.PID]{Sub: Canonicalize(n.Sub)}
	case GloballyF[P]:
		return GloballyF[prop.PID]{Sub: Canonicalize(n.Sub)}
	case AndF[P]:
		return AndF[prop.PID]{Left: Canonicalize(n.Left), Right: Canonicalize(n.Right)}
	case OrF[P]:
		return OrF[prop.PID]{Left: Canonicalize(n.Left), Right: Canonicalize(n.Right)}
	case ImpliesF[P]:
		return ImpliesF[prop.PID]{Left: Canonicalize(n.Left), Right: Canonicalize(n.Right)}
	case UntilF[P]:
		return UntilF[prop.PID]{Left: Canonicalize(n.Left), Right: Canonicalize(n.Right)}
	case WeakUntilF[P]:
		return WeakUntilF[prop.PID]{Left: Canonicalize(n.Left), Right: Canonicalize(n.Right)}
	case ReleaseF[P]:
		return ReleaseF[prop.PID]{Left: Canonicalize(n.Left), Right: Canonicalize(n.Right)}
	default:
		panic("ltl: Canonicalize: unhandled formula type")
	}
}
