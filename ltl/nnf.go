package ltl

// NNF rewrites f into Negation Normal Form: negation pushed down to
// atoms only, via De Morgan and the LTL duals (¬Xφ ≡ X¬φ, ¬Fφ ≡ G¬φ,
// ¬Gφ ≡ F¬φ, ¬(φ U ψ) ≡ ¬φ R ¬ψ, ¬(φ W ψ) ≡ ¬ψ U (¬φ ∧ ¬ψ),
// ¬(φ R ψ) ≡ ¬φ U ¬ψ, implies expanded). NNF is idempotent: applying
// it to an already-NNF formula returns an equal formula.
func NNF[P Identifiable](f Formula[P]) Formula[P] {
	return nnf(f, false)
}

// nnf rewrites f (possibly under an outer negation, tracked by neg)
// into NNF, bottom-up, in O(|f|).
func nnf[P Identifiable](f Formula[P], neg bool) Formula[P] {
	switch n := f.(type) {
	case BoolF[P]:
		b := bool(n)
		if neg {
			b = !b
		}
		return BoolF[P](b)
	case AtomF[P]:
		if neg {
			return NotF[P]{Sub: n}
		}
		return n
	case NotF[P]:
		return nnf(n.Sub, !neg)
	case NextF[P]:
		sub := nnf(n.Sub, neg)
		return NextF[P]{Sub: sub}
	case FinallyF[P]:
		if neg {
			// ¬Fφ ≡ G¬φ
			return GloballyF[P]{Sub: nnf(n.Sub, true)}
		}
		return FinallyF[P]{Sub: nnf(n.Sub, false)}
	case GloballyF[P]:
		if neg {
			// ¬Gφ ≡ F¬φ
			return FinallyF[P]{Sub: nnf(n.Sub, true)}
		}
		return GloballyF[P]{Sub: nnf(n.Sub, false)}
	case AndF[P]:
		l, r := nnf(n.Left, neg), nnf(n.Right, neg)
		if neg {
			return OrF[P]{Left: l, Right: r}
		}
		return AndF[P]{Left: l, Right: r}
	case OrF[P]:
		l, r := nnf(n.Left, neg), nnf(n.Right, neg)
		if neg {
			return AndF[P]{Left: l, Right: r}
		}
		return OrF[P]{Left: l, Right: r}
	case ImpliesF[P]:
		// φ → ψ ≡ ¬φ ∨ ψ
		expanded := OrF[P]{Left: NotF[P]{Sub: n.Left}, Right: n.Right}
		return nnf(expanded, neg)
	case UntilF[P]:
		if neg {
			// ¬(φ U ψ) ≡ ¬φ R ¬ψ
			return ReleaseF[P]{Left: nnf(n.Left, true), Right: nnf(n.Right, true)}
		}
		return UntilF[P]{Left: nnf(n.Left, false), Right: nnf(n.Right, false)}
	case WeakUntilF[P]:
		if neg {
			// ¬(φ W ψ) ≡ ¬ψ U (¬φ ∧ ¬ψ)
			nl := nnf(n.Left, true)
			nr := nnf(n.Right, true)
			return UntilF[P]{Left: nr, Right: AndF[P]{Left: nl, Right: nr}}
		}
		return WeakUntilF[P]{Left: nnf(n.Left, false), Right: nnf(n.Right, false)}
	case ReleaseF[P]:
		if neg {
			// ¬(φ R ψ) ≡ ¬φ U ¬ψ
			return UntilF[P]{Left: nnf(n.Left, true), Right: nnf(n.Right, true)}
		}
		return ReleaseF[P]{Left: nnf(n.Left, false), Right: nnf(n.Right, false)}
	default:
		panic("ltl: nnf: unhandled formula type")
	}
}

// ExpandDerived rewrites F, G and W in terms of U and R:
// F φ ≡ true U φ, G φ ≡ false R φ, φ W ψ ≡ (φ U ψ) ∨ G φ — expressed
// here via the equivalent R-based identity φ W ψ ≡ ψ R (φ ∨ ψ), so the
// tableau constructor only ever has to handle U and R natively. Safe
// to run before or after NNF; the result is semantically unchanged.
func ExpandDerived[P Identifiable](f Formula[P]) Formula[P] {
	switch n := f.(type) {
	case BoolF[P], AtomF[P]:
		return f
	case NotF[P]:
		return NotF[P]{Sub: ExpandDerived(n.Sub)}
	case NextF[P]:
		return NextF[P]{Sub: ExpandDerived(n.Sub)}
	case AndF[P]:
		return AndF[P]{Left: ExpandDerived(n.Left), Right: ExpandDerived(n.Right)}
	case OrF[P]:
		return OrF[P]{Left: ExpandDerived(n.Left), Right: ExpandDerived(n.Right)}
	case ImpliesF[P]:
		return ImpliesF[P]{Left: ExpandDerived(n.Left), Right: ExpandDerived(n.Right)}
	case FinallyF[P]:
		return UntilF[P]{Left: BoolF[P](true), Right: ExpandDerived(n.Sub)}
	case GloballyF[P]:
		return ReleaseF[P]{Left: BoolF[P](false), Right: ExpandDerived(n.Sub)}
	case UntilF[P]:
		return UntilF[P]{Left: ExpandDerived(n.Left), Right: ExpandDerived(n.Right)}
	case WeakUntilF[P]:
		l, r := ExpandDerived(n.Left), ExpandDerived(n.Right)
		return ReleaseF[P]{Left: r, Right: OrF[P]{Left: l, Right: r}}
	case ReleaseF[P]:
		return ReleaseF[P]{Left: ExpandDerived(n.Left), Right: ExpandDerived(n.Right)}
	default:
		panic("ltl: ExpandDerived: unhandled formula type")
	}
}
