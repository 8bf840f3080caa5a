// Package simplify implements the recursive-descent simplifier: given a
// formula and an oracle, it builds the simplification map associating
// each reachable residual subformula with the positions where it is the
// correct replacement for the root. Every recursive call returns its
// own fresh map built purely from its children's query results
// (Get/GetAt/NonConstant/NoChangeStart) — child maps are never merged
// wholesale into a parent's, which is what keeps a map's position sets
// disjoint across distinct formulas. Each operator synthesizes a
// genuinely smaller residual formula for the positions it cannot
// resolve to True/False, following simplify.py's simplify_G/simplify_F/
// simplify_X/simplify_U/simplify_AND/simplify_OR/simplify_IMP/
// simplify_NOT.
package simplify

import (
	"ltlsimplify/internal/formula"
	"ltlsimplify/internal/interval"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/oracle"
	"ltlsimplify/internal/simplmap"
)

// Result is the outcome of simplifying a formula over an evaluation
// window: the position→residual map, and the root's own known-true and
// known-false sets, each over that window.
type Result struct {
	Map      *simplmap.Map
	TrueSet  intset.Set
	FalseSet intset.Set
}

// Simplify reduces f over the evaluation window i, consulting o for
// predicate knowledge. i is typically N0() for a top-level call; the
// recursion narrows it per PropagateUnary/PropagateUntil as it
// descends.
func Simplify(f formula.Formula, i intset.Set, o oracle.Oracle) Result {
	m := simplify(f, i, o)
	return Result{Map: m, TrueSet: m.Get(formula.True{}), FalseSet: m.Get(formula.False{})}
}

func simplify(f formula.Formula, i intset.Set, o oracle.Oracle) *simplmap.Map {
	if i.IsEmpty() {
		return simplmap.New()
	}

	switch node := f.(type) {
	case formula.True:
		return leafResult(i, intset.N0(), intset.Empty(), formula.True{})
	case formula.False:
		return leafResult(i, intset.Empty(), intset.N0(), formula.False{})
	case formula.AtomicProposition:
		return leafResult(i, intset.Empty(), intset.Empty(), node)
	case formula.Predicate:
		return simplifyPredicate(node, i, o)
	case formula.Unary:
		return simplifyUnary(node, i, o)
	case formula.Binary:
		return simplifyBinary(node, i, o)
	case formula.Multi:
		return simplifyMulti(node, i, o)
	default:
		panic("internal/simplify: unknown formula kind")
	}
}

// leafResult builds a fresh map for a node that contributes a single,
// position-independent residual: True/False/AtomicProposition/Predicate
// all resolve this way, mirroring interval_simplification.py's leaf
// cases, each a single add_exp_in call rather than a per-position loop.
func leafResult(i, trueSet, falseSet intset.Set, residual formula.Formula) *simplmap.Map {
	m := simplmap.New()
	m.AddIn(formula.True{}, trueSet.Intersection(i))
	m.AddIn(formula.False{}, falseSet.Intersection(i))
	m.AddIn(residual, i.Without(trueSet).Without(falseSet))
	return m
}

func simplifyPredicate(p formula.Predicate, i intset.Set, o oracle.Oracle) *simplmap.Map {
	terms := make([]string, len(p.Terms))
	for idx, t := range p.Terms {
		terms[idx] = t.String()
	}
	trueSet, falseSet, err := o.Check(p.Name, terms)
	if err != nil {
		trueSet, falseSet = intset.Empty(), intset.Empty()
	}
	return leafResult(i, trueSet, falseSet, p)
}

// walkResult builds a fresh map for an operator node: the constant-fold
// True/False entries are recorded directly, and every remaining
// position gets a synthesized residual from synth, via walkResidual.
func walkResult(i, trueSet, falseSet intset.Set, noChangeStart int, hasNoChangeStart bool, synth func(t int) formula.Formula) *simplmap.Map {
	m := simplmap.New()
	m.AddIn(formula.True{}, trueSet.Intersection(i))
	m.AddIn(formula.False{}, falseSet.Intersection(i))
	remaining := i.Without(trueSet).Without(falseSet)
	walkResidual(remaining, noChangeStart, hasNoChangeStart, m, synth)
	return m
}

// walkResidual assigns synth(t) to each position of remaining in
// ascending order. Once t reaches noChangeStart (if known), the rest of
// remaining from t onward is assigned synth(t) in a single step and the
// walk stops — simplify.py's "t >= no_change_start" early return, the
// move that keeps this total over a tail-infinite remaining set. A
// tail-infinite run encountered with no known noChangeStart would loop
// forever, so that case panics instead: it means a caller propagated an
// unbounded window whose child map never stabilizes, which should not
// be reachable for a well-formed formula/oracle pair.
func walkResidual(remaining intset.Set, noChangeStart int, hasNoChangeStart bool, m *simplmap.Map, synth func(int) formula.Formula) {
	for _, run := range remaining.Partition() {
		t := run.Lo
		for {
			if hasNoChangeStart && t >= noChangeStart {
				tail := remaining.Intersection(intset.FromInterval(t, nil))
				m.AddIn(synth(t), tail)
				return
			}
			if run.Hi != nil && t > *run.Hi {
				break
			}
			if run.Hi == nil && !hasNoChangeStart {
				panic("internal/simplify: tail-infinite residual window without a known stabilization point")
			}
			m.AddAt(synth(t), t)
			t++
		}
	}
}

func isTrue(f formula.Formula) bool {
	_, ok := f.(formula.True)
	return ok
}

func isFalse(f formula.Formula) bool {
	_, ok := f.(formula.False)
	return ok
}

// conj and disj mirror LTL.conjunction/LTL.disjunction: a singleton
// list collapses to its bare element rather than a one-child Multi
// node. Callers never pass an empty list.
func conj(fs []formula.Formula) formula.Formula {
	if len(fs) == 1 {
		return fs[0]
	}
	return formula.Conjunction(fs...)
}

func disj(fs []formula.Formula) formula.Formula {
	if len(fs) == 1 {
		return fs[0]
	}
	return formula.Disjunction(fs...)
}

func toUnaryKind(op formula.UnaryOp) interval.UnaryKind {
	switch op {
	case formula.OpG:
		return interval.OpG
	case formula.OpF:
		return interval.OpF
	case formula.OpX:
		return interval.OpX
	case formula.OpO:
		return interval.OpO
	case formula.OpP:
		return interval.OpP
	case formula.OpNot:
		return interval.OpNot
	default:
		panic("internal/simplify: unknown UnaryOp")
	}
}

func simplifyUnary(u formula.Unary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	switch u.Op {
	case formula.OpNot:
		return notMap(simplify(u.Child, i, o))
	case formula.OpG:
		return simplifyG(u, i, o)
	case formula.OpF:
		return simplifyF(u, i, o)
	case formula.OpX:
		return simplifyX(u, i, o)
	case formula.OpO:
		return simplifyO(u, i, o)
	case formula.OpP:
		return simplifyP(u, i, o)
	default:
		panic("internal/simplify: unknown UnaryOp")
	}
}

// notMap builds !child's map directly from child's own entries, the
// way simplify_NOT does: for every expression child ever resolved to
// (including True/False), swap True<->False and wrap everything else in
// a fresh Not node. No window/recursion needed: negation commutes with
// position.
func notMap(child *simplmap.Map) *simplmap.Map {
	m := simplmap.New()
	for _, f := range child.Formulas() {
		j := child.Get(f)
		switch {
		case isTrue(f):
			m.AddIn(formula.False{}, j)
		case isFalse(f):
			m.AddIn(formula.True{}, j)
		default:
			m.AddIn(formula.Not(f), j)
		}
	}
	return m
}

// simplifyG implements the Globally residual recipe (simplify_G): for
// each unresolved position t, conjoin, over every non-constant
// subformula phi the child ever resolved to, G[x-t,y-t] phi for each
// contiguous run [x,y] of phi's own position set intersected with the
// shifted window [a+t, b+t].
func simplifyG(u formula.Unary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	a, b := u.Interval.A, u.Interval.B
	childWindow := interval.PropagateUnary(i, toUnaryKind(u.Op), a, b)
	childMap := simplify(u.Child, childWindow, o)
	trueSet, falseSet := interval.G(childMap.Get(formula.True{}), childMap.Get(formula.False{}), a, b)
	noChangeStart, hasNoChangeStart := childMap.NoChangeStart()
	return walkResult(i, trueSet, falseSet, noChangeStart, hasNoChangeStart, func(t int) formula.Formula {
		return globallyAt(childMap, a, b, t)
	})
}

// globallyAt computes G[a,b]'s residual at the single position t
// against childMap, re-deriving the constant fold first. It is also
// reused, with a=0 and a singleton window, by the Until residual
// (simplify_U's "S_G = simplify_G(IntegerSet([t],False), S_l, 0,
// x-t-1).get_at_timestep(t)").
func globallyAt(childMap *simplmap.Map, a int, b *int, t int) formula.Formula {
	trueSet, falseSet := interval.G(childMap.Get(formula.True{}), childMap.Get(formula.False{}), a, b)
	if trueSet.Contains(t) {
		return formula.True{}
	}
	if falseSet.Contains(t) {
		return formula.False{}
	}

	var window intset.Set
	lo := a + t
	if b == nil {
		window = intset.FromInterval(lo, nil)
	} else {
		hi := *b + t
		window = intset.FromInterval(lo, &hi)
	}

	var conjuncts []formula.Formula
	for _, phi := range childMap.NonConstant() {
		var inner []formula.Formula
		for _, run := range childMap.Get(phi).Intersection(window).Partition() {
			iv := shiftInterval(run, t)
			inner = append(inner, formula.Globally(phi, &iv))
		}
		if len(inner) == 0 {
			continue
		}
		conjuncts = append(conjuncts, conj(inner))
	}
	if len(conjuncts) == 0 {
		return formula.True{}
	}
	return conj(conjuncts)
}

// simplifyF implements the Finally residual recipe (simplify_F): the
// dual of simplifyG, disjoining F[x-t,y-t] phi across the same
// partitioned, shifted runs.
func simplifyF(u formula.Unary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	a, b := u.Interval.A, u.Interval.B
	childWindow := interval.PropagateUnary(i, toUnaryKind(u.Op), a, b)
	childMap := simplify(u.Child, childWindow, o)
	trueSet, falseSet := interval.F(childMap.Get(formula.True{}), childMap.Get(formula.False{}), a, b)
	noChangeStart, hasNoChangeStart := childMap.NoChangeStart()
	return walkResult(i, trueSet, falseSet, noChangeStart, hasNoChangeStart, func(t int) formula.Formula {
		return finallyAt(childMap, a, b, t)
	})
}

func finallyAt(childMap *simplmap.Map, a int, b *int, t int) formula.Formula {
	var window intset.Set
	lo := a + t
	if b == nil {
		window = intset.FromInterval(lo, nil)
	} else {
		hi := *b + t
		window = intset.FromInterval(lo, &hi)
	}

	var disjuncts []formula.Formula
	for _, phi := range childMap.NonConstant() {
		var inner []formula.Formula
		for _, run := range childMap.Get(phi).Intersection(window).Partition() {
			iv := shiftInterval(run, t)
			inner = append(inner, formula.Finally(phi, &iv))
		}
		if len(inner) == 0 {
			continue
		}
		disjuncts = append(disjuncts, disj(inner))
	}
	if len(disjuncts) == 0 {
		return formula.False{}
	}
	return disj(disjuncts)
}

// shiftInterval turns an absolute run [x,y] (or [x,inf)) into the
// interval a G[..]/F[..] node wraps it in once everything is measured
// relative to t instead of 0.
func shiftInterval(run intset.Run, t int) formula.Interval {
	if run.Hi == nil {
		return formula.Unbounded(run.Lo - t)
	}
	return formula.Bounded(run.Lo-t, *run.Hi-t)
}

// simplifyX implements the Next residual recipe (simplify_X): X[a]'s
// residual at t is simply X[a] wrapped around whatever the child
// resolved to at t+a.
func simplifyX(u formula.Unary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	a := u.Interval.A
	childWindow := interval.PropagateUnary(i, toUnaryKind(u.Op), a, nil)
	childMap := simplify(u.Child, childWindow, o)
	trueSet, falseSet := interval.X(childMap.Get(formula.True{}), childMap.Get(formula.False{}), a)
	noChangeStart, hasNoChangeStart := childMap.NoChangeStart()
	return walkResult(i, trueSet, falseSet, noChangeStart, hasNoChangeStart, func(t int) formula.Formula {
		child, ok := childMap.GetAt(t + a)
		if !ok {
			panic("internal/simplify: X residual position not covered by child map")
		}
		iv := formula.Unbounded(a)
		return formula.Next(child, &iv)
	})
}

// simplifyO and simplifyP extend the same recipe to the supplemented
// past-time duals: Once (disjunctive, like F) and Previously
// (conjunctive, like G), looking into [t-b, t-a] instead of [t+a,
// t+b]. There is no simplify_O/simplify_P in the grounding source
// (Once/Previously are a supplemented feature); pastResidualAt builds
// their residual the same way simplifyF/simplifyG do, with the window
// and the run-to-interval conversion mirrored backward.
func simplifyO(u formula.Unary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	a, b := u.Interval.A, u.Interval.B
	childWindow := interval.PropagateUnary(i, toUnaryKind(u.Op), a, b)
	childMap := simplify(u.Child, childWindow, o)
	trueSet, falseSet := interval.O(childMap.Get(formula.True{}), childMap.Get(formula.False{}), a, b)
	noChangeStart, hasNoChangeStart := childMap.NoChangeStart()
	return walkResult(i, trueSet, falseSet, noChangeStart, hasNoChangeStart, func(t int) formula.Formula {
		return pastResidualAt(childMap, a, b, t, true)
	})
}

func simplifyP(u formula.Unary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	a, b := u.Interval.A, u.Interval.B
	childWindow := interval.PropagateUnary(i, toUnaryKind(u.Op), a, b)
	childMap := simplify(u.Child, childWindow, o)
	trueSet, falseSet := interval.P(childMap.Get(formula.True{}), childMap.Get(formula.False{}), a, b)
	noChangeStart, hasNoChangeStart := childMap.NoChangeStart()
	return walkResult(i, trueSet, falseSet, noChangeStart, hasNoChangeStart, func(t int) formula.Formula {
		return pastResidualAt(childMap, a, b, t, false)
	})
}

func pastResidualAt(childMap *simplmap.Map, a int, b *int, t int, once bool) formula.Formula {
	vacuous := func() formula.Formula {
		if once {
			return formula.False{}
		}
		return formula.True{}
	}

	hi := t - a
	if hi < 0 {
		return vacuous()
	}
	lo := 0
	if b != nil {
		lo = t - *b
		if lo < 0 {
			lo = 0
		}
	}
	window := intset.FromInterval(lo, &hi)

	var combined []formula.Formula
	for _, phi := range childMap.NonConstant() {
		var inner []formula.Formula
		for _, run := range childMap.Get(phi).Intersection(window).Partition() {
			loAbs := run.Lo
			hiAbs := loAbs
			if run.Hi != nil {
				hiAbs = *run.Hi
			}
			iv := formula.Bounded(t-hiAbs, t-loAbs)
			if once {
				inner = append(inner, formula.Once(phi, &iv))
			} else {
				inner = append(inner, formula.Previously(phi, &iv))
			}
		}
		if len(inner) == 0 {
			continue
		}
		if once {
			combined = append(combined, disj(inner))
		} else {
			combined = append(combined, conj(inner))
		}
	}
	if len(combined) == 0 {
		return vacuous()
	}
	if once {
		return disj(combined)
	}
	return conj(combined)
}

func simplifyBinary(bin formula.Binary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	switch bin.Op {
	case formula.OpUntil:
		return simplifyUntil(bin, i, o)
	case formula.OpAnd:
		return simplifyAnd(bin, i, o)
	case formula.OpOr:
		return simplifyOr(bin, i, o)
	case formula.OpImp:
		return simplifyImp(bin, i, o)
	case formula.OpIff:
		return simplifyIff(bin, i, o)
	default:
		panic("internal/simplify: unknown BinaryOp")
	}
}

// combineMapStarts is max(no_change_start_l, no_change_start_r): known
// if either side is, using whichever side(s) report a known
// stabilization point.
func combineMapStarts(a, b *simplmap.Map) (int, bool) {
	aStart, aOK := a.NoChangeStart()
	bStart, bOK := b.NoChangeStart()
	switch {
	case aOK && bOK:
		if aStart > bStart {
			return aStart, true
		}
		return bStart, true
	case aOK:
		return aStart, true
	case bOK:
		return bStart, true
	default:
		return 0, false
	}
}

// binaryCombine builds a fresh map purely from two children's own
// entries: trueSet/falseSet (already computed by the caller via the
// matching interval.* recipe) are recorded directly, and every
// remaining position gets at(left, right, t).
func binaryCombine(i intset.Set, left, right *simplmap.Map, trueSet, falseSet intset.Set, at func(l, r *simplmap.Map, t int) formula.Formula) *simplmap.Map {
	noChangeStart, hasNoChangeStart := combineMapStarts(left, right)
	return walkResult(i, trueSet, falseSet, noChangeStart, hasNoChangeStart, func(t int) formula.Formula {
		return at(left, right, t)
	})
}

// andAt and orAt are simplify_AND/simplify_OR's per-position body:
// combine what each side resolved to at t, absorbing the identity
// element (True for and, False for or) instead of wrapping it.
func andAt(left, right *simplmap.Map, t int) formula.Formula {
	expL, okL := left.GetAt(t)
	expR, okR := right.GetAt(t)
	if !okL || !okR {
		panic("internal/simplify: and residual position not covered by a child map")
	}
	if isTrue(expL) {
		return expR
	}
	if isTrue(expR) {
		return expL
	}
	return formula.And(expL, expR)
}

func orAt(left, right *simplmap.Map, t int) formula.Formula {
	expL, okL := left.GetAt(t)
	expR, okR := right.GetAt(t)
	if !okL || !okR {
		panic("internal/simplify: or residual position not covered by a child map")
	}
	if isFalse(expL) {
		return expR
	}
	if isFalse(expR) {
		return expL
	}
	return formula.Or(expL, expR)
}

func simplifyAnd(bin formula.Binary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	leftMap := simplify(bin.Left, i, o)
	rightMap := simplify(bin.Right, i, o)
	trueSet, falseSet := interval.And(leftMap.Get(formula.True{}), leftMap.Get(formula.False{}), rightMap.Get(formula.True{}), rightMap.Get(formula.False{}))
	return binaryCombine(i, leftMap, rightMap, trueSet, falseSet, andAt)
}

func simplifyOr(bin formula.Binary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	leftMap := simplify(bin.Left, i, o)
	rightMap := simplify(bin.Right, i, o)
	trueSet, falseSet := interval.Or(leftMap.Get(formula.True{}), leftMap.Get(formula.False{}), rightMap.Get(formula.True{}), rightMap.Get(formula.False{}))
	return binaryCombine(i, leftMap, rightMap, trueSet, falseSet, orAt)
}

// simplifyImp implements simplify_IMP, which in the grounding source is
// pure delegation: simplify_OR(I, simplify_NOT(I, S_l), S_r). The
// true/false constant fold still uses interval.Imp directly (the same
// arithmetic, proven equal to Or(Not(l),r)'s), so the residual and the
// constant fold never disagree.
func simplifyImp(bin formula.Binary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	leftMap := simplify(bin.Left, i, o)
	rightMap := simplify(bin.Right, i, o)
	trueSet, falseSet := interval.Imp(leftMap.Get(formula.True{}), leftMap.Get(formula.False{}), rightMap.Get(formula.True{}), rightMap.Get(formula.False{}))
	return binaryCombine(i, notMap(leftMap), rightMap, trueSet, falseSet, orAt)
}

// simplifyIff has no direct grounding-source counterpart (the source
// never defines simplify_IFF). It extends simplify_IMP's delegation
// pattern the way (l imp r) and (r imp l) combine classically:
// (l iff r) = (l imp r) and (r imp l). The two implications are built
// as full intermediate maps purely to synthesize the residual; the
// constant fold still goes through interval.Iff directly.
func simplifyIff(bin formula.Binary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	leftMap := simplify(bin.Left, i, o)
	rightMap := simplify(bin.Right, i, o)
	trueSet, falseSet := interval.Iff(leftMap.Get(formula.True{}), leftMap.Get(formula.False{}), rightMap.Get(formula.True{}), rightMap.Get(formula.False{}))

	impLR := impMap(i, notMap(leftMap), rightMap)
	impRL := impMap(i, notMap(rightMap), leftMap)
	return binaryCombine(i, impLR, impRL, trueSet, falseSet, andAt)
}

// impMap builds notLeft-or-right as a standalone map: the same
// construction simplify_IMP delegates to, reused here as one of Iff's
// two inner implications.
func impMap(i intset.Set, notLeftMap, rightMap *simplmap.Map) *simplmap.Map {
	trueSet, falseSet := interval.Or(notLeftMap.Get(formula.True{}), notLeftMap.Get(formula.False{}), rightMap.Get(formula.True{}), rightMap.Get(formula.False{}))
	return binaryCombine(i, notLeftMap, rightMap, trueSet, falseSet, orAt)
}

// simplifyMulti implements simplify_multi: fold AND (conjunction) or OR
// (disjunction) pairwise across the children's own maps, left to right.
func simplifyMulti(mu formula.Multi, i intset.Set, o oracle.Oracle) *simplmap.Map {
	result := simplify(mu.Children[0], i, o)
	for _, child := range mu.Children[1:] {
		next := simplify(child, i, o)
		if mu.Op == formula.OpConjunction {
			trueSet, falseSet := interval.And(result.Get(formula.True{}), result.Get(formula.False{}), next.Get(formula.True{}), next.Get(formula.False{}))
			result = binaryCombine(i, result, next, trueSet, falseSet, andAt)
		} else {
			trueSet, falseSet := interval.Or(result.Get(formula.True{}), result.Get(formula.False{}), next.Get(formula.True{}), next.Get(formula.False{}))
			result = binaryCombine(i, result, next, trueSet, falseSet, orAt)
		}
	}
	return result
}

// simplifyUntil implements simplify_U: after the constant fold, each
// remaining position t disjoins one term per boundary split of
// intset.Split(J_l, J_r, [a+t,b+t]) — the C1 operation this simplifier
// is the one real caller of.
func simplifyUntil(bin formula.Binary, i intset.Set, o oracle.Oracle) *simplmap.Map {
	a, b := bin.Interval.A, bin.Interval.B
	leftWindow, rightWindow := interval.PropagateUntil(i, a, b)
	leftMap := simplify(bin.Left, leftWindow, o)
	rightMap := simplify(bin.Right, rightWindow, o)
	trueSet, falseSet := interval.U(leftMap.Get(formula.True{}), leftMap.Get(formula.False{}), rightMap.Get(formula.True{}), rightMap.Get(formula.False{}), a, b)
	noChangeStart, hasNoChangeStart := combineMapStarts(leftMap, rightMap)
	return walkResult(i, trueSet, falseSet, noChangeStart, hasNoChangeStart, func(t int) formula.Formula {
		return untilResidualAt(leftMap, rightMap, a, b, t)
	})
}

func allSets(m *simplmap.Map) []intset.Set {
	fs := m.Formulas()
	out := make([]intset.Set, len(fs))
	for idx, f := range fs {
		out[idx] = m.Get(f)
	}
	return out
}

func untilResidualAt(leftMap, rightMap *simplmap.Map, a int, b *int, t int) formula.Formula {
	var hi *int
	if b != nil {
		v := *b + t
		hi = &v
	}
	window := intset.FromInterval(a+t, hi)
	splits := intset.Split(allSets(leftMap), allSets(rightMap), window)

	var disjuncts []formula.Formula
	for _, run := range splits {
		x := run.Lo

		// simp_exp1: G[0, x-t-1] re-simplified against the left
		// child's own map at the single position t.
		hiG := x - t - 1
		simpExp1 := globallyAt(leftMap, 0, &hiG, t)

		expL, okL := leftMap.GetAt(x)
		expR, okR := rightMap.GetAt(x)
		if !okL || !okR {
			panic("internal/simplify: until split position not covered by a child map")
		}

		var rightBound *int
		if run.Hi != nil {
			v := *run.Hi - x
			rightBound = &v
		}

		var simpExp2 formula.Formula
		if isTrue(expL) {
			iv := intervalFrom(x-t, rightBound)
			simpExp2 = formula.Finally(expR, &iv)
		} else {
			untilIv := intervalFrom(0, rightBound)
			untilExp := formula.Until(expL, expR, &untilIv)
			nextIv := formula.Unbounded(x - t)
			simpExp2 = formula.Next(untilExp, &nextIv)
		}

		if isTrue(simpExp1) {
			disjuncts = append(disjuncts, simpExp2)
		} else {
			disjuncts = append(disjuncts, formula.And(simpExp1, simpExp2))
		}
	}
	if len(disjuncts) == 0 {
		return formula.False{}
	}
	return disj(disjuncts)
}

func intervalFrom(lo int, hi *int) formula.Interval {
	if hi == nil {
		return formula.Unbounded(lo)
	}
	return formula.Bounded(lo, *hi)
}
