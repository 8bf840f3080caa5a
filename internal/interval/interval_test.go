package interval

import (
	"testing"

	"ltlsimplify/internal/intset"
)

func b(n int) *int { return ptr(n) }

func TestAndOrDualize(t *testing.T) {
	trueL, falseL := intset.New(0, 1), intset.New(2, 3)
	trueR, falseR := intset.New(1, 2), intset.New(0, 3)

	trueAnd, falseAnd := And(trueL, falseL, trueR, falseR)
	if !trueAnd.Equals(intset.New(1)) {
		t.Errorf("And true = %v, want {1}", trueAnd)
	}
	if !falseAnd.Equals(intset.New(0, 2, 3)) {
		t.Errorf("And false = %v, want {0,2,3}", falseAnd)
	}

	trueOr, falseOr := Or(trueL, falseL, trueR, falseR)
	if !trueOr.Equals(intset.New(0, 1, 2)) {
		t.Errorf("Or true = %v, want {0,1,2}", trueOr)
	}
	if !falseOr.Equals(intset.New(3)) {
		t.Errorf("Or false = %v, want {3}", falseOr)
	}
}

func TestNotSwaps(t *testing.T) {
	tr, fa := intset.New(1, 2), intset.New(3)
	nt, nf := Not(tr, fa)
	if !nt.Equals(fa) || !nf.Equals(tr) {
		t.Errorf("Not did not swap: got (%v,%v)", nt, nf)
	}
}

// X p.
func TestXShift(t *testing.T) {
	trueR := intset.New(1, 3)
	falseR := intset.New(0, 2)
	trueSet, falseSet := X(trueR, falseR, 1)
	if !trueSet.Equals(intset.New(0, 2)) {
		t.Errorf("X true = %v, want {0,2}", trueSet)
	}
	if !falseSet.Equals(intset.New(1)) { // {0,2}.Addition(-1) = {-1,1}, negatives dropped -> {1}
		t.Errorf("X false = %v, want {1}", falseSet)
	}
}

// F[0,2] p, where p holds exactly at {5}.
func TestFBounded(t *testing.T) {
	trueR := intset.New(5)
	falseR := intset.NewTail(0) // p false everywhere else, tail-infinite
	falseR = falseR.Without(intset.New(5))

	trueSet, _ := F(trueR, falseR, 0, b(2))
	want := intset.New(3, 4, 5)
	if !trueSet.Equals(want) {
		t.Errorf("F[0,2] true = %v, want %v", trueSet, want)
	}
}

// G[1,3] p where p is true from position 2 on.
func TestGBoundedTailChild(t *testing.T) {
	trueR := intset.NewTail(2)
	falseR := intset.New(0, 1)

	trueSet, falseSet := G(trueR, falseR, 1, b(3))
	if !trueSet.IsInf() {
		t.Errorf("G[1,3] true should be tail-infinite once p is permanently true, got %v", trueSet)
	}
	if falseSet.IsEmpty() {
		t.Errorf("G[1,3] false should be non-empty near t=0, got %v", falseSet)
	}
}

func TestUniversalDisjointness(t *testing.T) {
	cases := []struct {
		name         string
		trueR, falseR intset.Set
	}{
		{"finite", intset.New(0, 2, 4), intset.New(1, 3)},
		{"tail-true", intset.NewTail(0, 3), intset.New(1, 2)},
		{"tail-false", intset.New(0, 1), intset.NewTail(2, 5)},
	}
	for _, c := range cases {
		gt, gf := G(c.trueR, c.falseR, 1, b(2))
		if !gt.Intersection(gf).IsEmpty() {
			t.Errorf("%s: G true/false overlap: %v / %v", c.name, gt, gf)
		}
		ft, ff := F(c.trueR, c.falseR, 0, b(2))
		if !ft.Intersection(ff).IsEmpty() {
			t.Errorf("%s: F true/false overlap: %v / %v", c.name, ft, ff)
		}
	}
}

// p U q.
func TestUnbounded(t *testing.T) {
	trueL := intset.NewTail(0) // p true everywhere
	falseL := intset.Empty()
	trueR := intset.New(3)
	falseR := intset.NewTail(0).Without(intset.New(3))

	trueSet, _ := U(trueL, falseL, trueR, falseR, 0, nil)
	want := intset.New(0, 1, 2, 3)
	if !trueSet.Equals(want) {
		t.Errorf("p U q true = %v, want %v", trueSet, want)
	}
}

func TestPropagateUnaryGUnboundedTail(t *testing.T) {
	i := intset.NewTail(5)
	child := PropagateUnary(i, OpG, 1, nil)
	if !child.Equals(intset.NewTail(6)) {
		t.Errorf("propagate G[1,inf) over tail window = %v, want tail from 6", child)
	}
}

func TestPropagateUntilBounded(t *testing.T) {
	i := intset.New(0, 1)
	left, right := PropagateUntil(i, 0, b(2))
	if !left.Equals(intset.FromInterval(0, b(3))) {
		t.Errorf("left = %v", left)
	}
	if !right.Equals(intset.FromInterval(0, b(4))) {
		t.Errorf("right = %v", right)
	}
}
