// Package interval implements interval propagation and
// the per-operator true/false interval-set arithmetic:
// given a child's known-true and known-false position sets (or the
// parent's evaluation window, for propagation), it computes the
// corresponding set for the operator one level up or down the formula
// tree.
package interval

import "ltlsimplify/internal/intset"

func ptr(n int) *int {
	return &n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// buildFinite returns the finite set {t in [lo,hi] : pred(t)}, or Empty()
// if hi < lo.
func buildFinite(lo, hi int, pred func(int) bool) intset.Set {
	if hi < lo {
		return intset.Empty()
	}
	var elems []int
	for t := lo; t <= hi; t++ {
		if pred(t) {
			elems = append(elems, t)
		}
	}
	return intset.New(elems...)
}

// buildTail returns the tail-infinite set whose witness is
// {t in [lo,hi] : pred(t)}.
func buildTail(lo, hi int, pred func(int) bool) intset.Set {
	if hi < lo {
		return intset.NewTail()
	}
	var elems []int
	for t := lo; t <= hi; t++ {
		if pred(t) {
			elems = append(elems, t)
		}
	}
	return intset.NewTail(elems...)
}

// anyN reports whether pred holds for some n in [lo,hi].
func anyN(lo, hi int, pred func(int) bool) bool {
	for n := lo; n <= hi; n++ {
		if pred(n) {
			return true
		}
	}
	return false
}

// PropagateUnary computes the evaluation window to hand to child, given
// the window i at which the unary operator itself is being evaluated.
// a and b are the operator's interval bounds (b nil meaning ∞).
func PropagateUnary(i intset.Set, op UnaryKind, a int, b *int) intset.Set {
	switch op {
	case OpG, OpF:
		if b == nil || i.IsInf() {
			return intset.NewTail(i.Min() + a)
		}
		return intset.FromInterval(i.Min()+a, ptr(i.Max()+*b))
	case OpX:
		return i.Addition(a)
	case OpP:
		return i.Addition(-a)
	case OpO:
		if i.IsInf() {
			if b == nil {
				return intset.N0()
			}
			return intset.NewTail(max0(i.Min() - *b))
		}
		if b == nil {
			return intset.FromInterval(0, ptr(i.Max()-a))
		}
		return intset.FromInterval(max0(i.Min()-*b), ptr(i.Max()-a))
	case OpNot:
		return i
	}
	return i
}

// PropagateUntil computes the windows to hand to U's left and right
// operands given the window i at which p U[a,b] q is evaluated.
func PropagateUntil(i intset.Set, a int, b *int) (left, right intset.Set) {
	if b == nil || i.IsInf() {
		left = intset.NewTail(i.Min())
		right = intset.NewTail(i.Min() + a)
		return
	}
	left = intset.FromInterval(i.Min(), ptr(i.Max()+*b))
	right = intset.FromInterval(i.Min()+a, ptr(i.Max()+*b+1))
	return
}

// UnaryKind identifies which unary recipe PropagateUnary/the G/F/X/O/P
// functions below implement. Declared here (rather than imported from
// formula.UnaryOp) so this package has no dependency on formula's AST
// shape — only on the bounds and sets that drive the arithmetic.
type UnaryKind int

const (
	OpG UnaryKind = iota
	OpF
	OpX
	OpO
	OpP
	OpNot
)
