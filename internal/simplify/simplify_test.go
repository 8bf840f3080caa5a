package simplify

import (
	"testing"

	"ltlsimplify/internal/formula"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/oracle"
)

func ip(n int) *int { return &n }

// noKnowledge always reports nothing known — atomic propositions, not
// predicates, carry the ground truth in these tests.
var noKnowledge = oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
	return intset.Empty(), intset.Empty(), nil
})

// A plain atomic proposition simplifies to itself everywhere, with no
// resolved true/false positions.
func TestAtomicPropositionIsItsOwnResidual(t *testing.T) {
	p := formula.AtomicProposition{Name: "p"}
	res := Simplify(p, intset.N0(), noKnowledge)
	if !res.TrueSet.IsEmpty() || !res.FalseSet.IsEmpty() {
		t.Errorf("expected nothing resolved for an unconstrained AP, got true=%v false=%v", res.TrueSet, res.FalseSet)
	}
	nc := res.Map.NonConstant()
	if len(nc) != 1 || !nc[0].Equal(p) {
		t.Errorf("expected the AP itself as the sole residual, got %v", nc)
	}
}

func TestNotDualizesTrueFalse(t *testing.T) {
	known := oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
		return intset.New(0, 1), intset.New(2, 3), nil
	})
	pred := formula.Predicate{Name: "p", Terms: nil}
	f := formula.Not(pred)
	res := Simplify(f, intset.New(0, 1, 2, 3), known)
	if !res.TrueSet.Equals(intset.New(2, 3)) {
		t.Errorf("!p true = %v, want {2,3}", res.TrueSet)
	}
	if !res.FalseSet.Equals(intset.New(0, 1)) {
		t.Errorf("!p false = %v, want {0,1}", res.FalseSet)
	}
}

// F[0,2] p where p is true exactly at {5}.
func TestFinallyBoundedResolves(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	known := oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
		trueSet := intset.New(5)
		falseSet := intset.NewTail(0).Without(trueSet)
		return trueSet, falseSet, nil
	})
	interval := formula.Bounded(0, 2)
	f := formula.Finally(p, &interval)
	res := Simplify(f, intset.New(0, 1, 2, 3, 4, 5), known)
	want := intset.New(3, 4, 5)
	if !res.TrueSet.Equals(want) {
		t.Errorf("F[0,2] p true = %v, want %v", res.TrueSet, want)
	}
}

// X p shifts every resolved position back by one.
func TestNextShifts(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	known := oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
		return intset.New(1, 3), intset.New(0, 2), nil
	})
	f := formula.Next(p, nil)
	res := Simplify(f, intset.New(0, 1, 2), known)
	if !res.TrueSet.Equals(intset.New(0, 2)) {
		t.Errorf("X p true = %v, want {0,2}", res.TrueSet)
	}
}

// p U q where p holds everywhere and q holds only at 3.
func TestUntilUnbounded(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	q := formula.Predicate{Name: "q"}
	known := oracle.Func(func(name string, _ []string) (intset.Set, intset.Set, error) {
		if name == "p" {
			return intset.N0(), intset.Empty(), nil
		}
		return intset.New(3), intset.NewTail(0).Without(intset.New(3)), nil
	})
	f := formula.Until(p, q, nil)
	res := Simplify(f, intset.N0(), known)
	want := intset.New(0, 1, 2, 3)
	if !res.TrueSet.Equals(want) {
		t.Errorf("p U q true = %v, want %v", res.TrueSet, want)
	}
}

// G[1,3] p where p becomes permanently true from position 2 onward —
// the simplifier should report the root's true set as tail-infinite.
func TestGloballyBoundedPermanentTail(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	known := oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
		return intset.NewTail(2), intset.New(0, 1), nil
	})
	interval := formula.Bounded(1, 3)
	f := formula.Globally(p, &interval)
	res := Simplify(f, intset.N0(), known)
	if !res.TrueSet.IsInf() {
		t.Errorf("G[1,3] p true should be tail-infinite, got %v", res.TrueSet)
	}
}

func TestConjunctionIntersectsTrueUnionsFalse(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	q := formula.Predicate{Name: "q"}
	known := oracle.Func(func(name string, _ []string) (intset.Set, intset.Set, error) {
		if name == "p" {
			return intset.New(0, 1), intset.New(2), nil
		}
		return intset.New(1, 2), intset.New(0), nil
	})
	f := formula.Conjunction(p, q)
	res := Simplify(f, intset.New(0, 1, 2), known)
	if !res.TrueSet.Equals(intset.New(1)) {
		t.Errorf("(p & q) true = %v, want {1}", res.TrueSet)
	}
	if !res.FalseSet.Equals(intset.New(0, 2)) {
		t.Errorf("(p & q) false = %v, want {0,2}", res.FalseSet)
	}
}

// X p over {0,1,2,3} where p is known true only at 2: position 1 (whose
// successor 2 is known) must resolve all the way to True at the root,
// not merely rewrap p unresolved — demonstrating that the residual is
// assembled from the shifted child's own per-position knowledge
// (GetAt(t+a)), not a blanket copy of the input node. The remaining
// positions, where nothing about their successor is known, legitimately
// still carry X[1] p, since there is nothing smaller to say. Every
// position across the whole map must appear in exactly one residual's
// domain.
func TestNextResidualUsesTheShiftedChildsOwnKnowledge(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	known := oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
		return intset.New(2), intset.Empty(), nil
	})
	f := formula.Next(p, nil)
	res := Simplify(f, intset.New(0, 1, 2, 3), known)

	if !res.TrueSet.Contains(1) {
		t.Fatalf("X p true = %v, want it to include 1 (p holds at its successor 2)", res.TrueSet)
	}
	for _, pos := range []int{0, 2, 3} {
		got, ok := res.Map.GetAt(pos)
		if !ok {
			t.Fatalf("no residual recorded at %d", pos)
		}
		if !got.Equal(f) {
			t.Fatalf("residual at %d = %v, want the unresolved X[1] p (nothing is known about its successor)", pos, got)
		}
	}

	seen := map[int]formula.Formula{}
	for _, fm := range res.Map.Formulas() {
		j := res.Map.Get(fm)
		j.Iterate(3, func(pos int) bool {
			if prior, ok := seen[pos]; ok {
				t.Fatalf("position %d assigned to both %v and %v", pos, prior, fm)
			}
			seen[pos] = fm
			return true
		})
	}
}

// G[0,1] p where p is known true only at {1}: positions 0 and 1 each
// have one known and one unknown position in their shifted window, so
// each must synthesize its own, narrower G interval rather than repeat the root
// node, and the two residuals must differ from each other. The window
// as a whole must still tile the evaluation set with pairwise-disjoint
// position sets.
func TestGloballyResidualIsSynthesizedNotTheInputNode(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	known := oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
		return intset.New(1), intset.Empty(), nil
	})
	interval := formula.Bounded(0, 1)
	f := formula.Globally(p, &interval)
	res := Simplify(f, intset.New(0, 1, 2), known)

	got0, ok := res.Map.GetAt(0)
	if !ok {
		t.Fatalf("no residual recorded at 0")
	}
	if got0.Equal(f) {
		t.Fatalf("residual at 0 is the unchanged input node %v, want a synthesized, narrower G term", got0)
	}
	got1, ok := res.Map.GetAt(1)
	if !ok {
		t.Fatalf("no residual recorded at 1")
	}
	if got1.Equal(got0) {
		t.Fatalf("residuals at 0 and 1 should differ (distinct shifted windows), both got %v", got0)
	}

	seen := map[int]formula.Formula{}
	for _, fm := range res.Map.Formulas() {
		j := res.Map.Get(fm)
		j.Iterate(2, func(pos int) bool {
			if prior, ok := seen[pos]; ok {
				t.Fatalf("position %d assigned to both %v and %v", pos, prior, fm)
			}
			seen[pos] = fm
			return true
		})
	}
}

// p U q where p is entirely unknown and q is known true only at 2:
// position 0's residual must come from intset.Split enumerating the
// boundary cases between the two children's position families, not a
// copy of the root U node — and every position in the evaluation set
// must land in exactly one residual's domain.
func TestUntilResidualIsSynthesizedFromSplitBoundaries(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	q := formula.Predicate{Name: "q"}
	known := oracle.Func(func(name string, _ []string) (intset.Set, intset.Set, error) {
		if name == "q" {
			return intset.New(2), intset.Empty(), nil
		}
		return intset.Empty(), intset.Empty(), nil
	})
	f := formula.Until(p, q, nil)
	res := Simplify(f, intset.N0(), known)

	got, ok := res.Map.GetAt(0)
	if !ok {
		t.Fatalf("no residual recorded at 0")
	}
	if got.Equal(f) {
		t.Fatalf("residual at 0 is the unchanged input node %v, want a split-enumerated disjunction", got)
	}
	if isTrue(got) || isFalse(got) {
		t.Fatalf("residual at 0 = %v, want a non-constant synthesized term", got)
	}

	seen := map[int]formula.Formula{}
	for _, fm := range res.Map.Formulas() {
		j := res.Map.Get(fm)
		j.Iterate(5, func(pos int) bool {
			if prior, ok := seen[pos]; ok {
				t.Fatalf("position %d assigned to both %v and %v", pos, prior, fm)
			}
			seen[pos] = fm
			return true
		})
	}
}

func TestNoChangeStartReflectsTailResolution(t *testing.T) {
	p := formula.Predicate{Name: "p"}
	known := oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
		return intset.NewTail(4), intset.New(0, 1, 2, 3), nil
	})
	f := formula.Globally(p, nil)
	res := Simplify(f, intset.N0(), known)
	start, ok := res.Map.NoChangeStart()
	if !ok {
		t.Fatalf("expected a known no-change start")
	}
	if start < 4 {
		t.Errorf("NoChangeStart = %d, expected it to be at or past where p becomes permanent (4)", start)
	}
}
