package ltl

// Simplify applies the safe syntactic rewrites spec'd for the core:
// double-negation elimination, boolean-literal absorption, F/G
// idempotence, and ∧/∨ idempotence on identical operands. Every
// rewrite here preserves semantics. The trace evaluator applies it to
// every residual it builds, so residuals collapse to literals early.
func Simplify[P Identifiable](f Formula[P]) Formula[P] {
	switch n := f.(type) {
	case BoolF[P], AtomF[P]:
		return f
	case NotF[P]:
		sub := Simplify(n.Sub)
		if inner, ok := sub.(NotF[P]); ok {
			return inner.Sub // ¬¬φ → φ
		}
		if b, ok := sub.(BoolF[P]); ok {
			return BoolF[P](!bool(b))
		}
		return NotF[P]{Sub: sub}
	case NextF[P]:
		return NextF[P]{Sub: Simplify(n.Sub)}
	case FinallyF[P]:
		sub := Simplify(n.Sub)
		if inner, ok := sub.(FinallyF[P]); ok {
			return inner // F F φ → F φ
		}
		return FinallyF[P]{Sub: sub}
	case GloballyF[P]:
		sub := Simplify(n.Sub)
		if inner, ok := sub.(GloballyF[P]); ok {
			return inner // G G φ → G φ
		}
		return GloballyF[P]{Sub: sub}
	case AndF[P]:
		l, r := Simplify(n.Left), Simplify(n.Right)
		if isFalse(l) || isFalse(r) {
			return BoolF[P](false)
		}
		if isTrue(l) {
			return r
		}
		if isTrue(r) {
			return l
		}
		if Equal(l, r) {
			return l // idempotence
		}
		return AndF[P]{Left: l, Right: r}
	case OrF[P]:
		l, r := Simplify(n.Left), Simplify(n.Right)
		if isTrue(l) || isTrue(r) {
			return BoolF[P](true)
		}
		if isFalse(l) {
			return r
		}
		if isFalse(r) {
			return l
		}
		if Equal(l, r) {
			return l // idempotence
		}
		return OrF[P]{Left: l, Right: r}
	case ImpliesF[P]:
		l, r := Simplify(n.Left), Simplify(n.Right)
		return ImpliesF[P]{Left: l, Right: r}
	case UntilF[P]:
		return UntilF[P]{Left: Simplify(n.Left), Right: Simplify(n.Right)}
	case WeakUntilF[P]:
		return WeakUntilF[P]{Left: Simplify(n.Left), Right: Simplify(n.Right)}
	case ReleaseF[P]:
		return ReleaseF[P]{Left: Simplify(n.Left), Right: Simplify(n.Right)}
	default:
		panic("ltl: Simplify: unhandled formula type")
	}
}

func isTrue[P Identifiable](f Formula[P]) bool {
	b, ok := f.(BoolF[P])
	return ok && bool(b)
}

func isFalse[P Identifiable](f Formula[P]) bool {
	b, ok := f.(BoolF[P])
	return ok && !bool(b)
}
