package formula

import "testing"

func TestStructuralEqualityIncludesIntervals(t *testing.T) {
	p := AtomicProposition{Name: "p"}
	a := Globally(p, nil)
	b := Globally(p, nil)
	if !a.Equal(b) {
		t.Errorf("two default-interval G(p) formulas should be equal")
	}
	c := Globally(p, &Interval{A: 1, B: nil})
	if a.Equal(c) {
		t.Errorf("G(p) with differing intervals must not be equal")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	p := AtomicProposition{Name: "p"}
	q := AtomicProposition{Name: "q"}
	a := And(p, q)
	b := And(AtomicProposition{Name: "p"}, AtomicProposition{Name: "q"})
	if !a.Equal(b) {
		t.Fatalf("expected equal formulas")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal formulas must hash equally")
	}
}

func TestPredicateEqualityByTerms(t *testing.T) {
	a := Predicate{Name: "OnRamp", Terms: []Term{Constant{Name: "v1"}}}
	b := Predicate{Name: "OnRamp", Terms: []Term{Constant{Name: "v1"}}}
	c := Predicate{Name: "OnRamp", Terms: []Term{Constant{Name: "v2"}}}
	if !a.Equal(b) {
		t.Errorf("predicates with identical terms should be equal")
	}
	if a.Equal(c) {
		t.Errorf("predicates with different terms should not be equal")
	}
}

func TestDefaultIntervals(t *testing.T) {
	if got := DefaultInterval(OpG); got.A != 0 || got.B != nil {
		t.Errorf("G defaults to (0,inf), got %v", got)
	}
	if got := DefaultInterval(OpX); got.A != 1 || got.B != nil {
		t.Errorf("X defaults to (1,inf), got %v", got)
	}
}

func TestNotDoubleNegationStructurallyDistinct(t *testing.T) {
	p := AtomicProposition{Name: "p"}
	notNotP := Not(Not(p))
	if notNotP.Equal(p) {
		t.Errorf("!!p is not structurally equal to p (that's a simplifier job, not AST equality)")
	}
}

func TestStringRendersDefaultIntervalBare(t *testing.T) {
	p := AtomicProposition{Name: "p"}
	if got := Globally(p, nil).String(); got != "G(p)" {
		t.Errorf("String() = %q, want %q", got, "G(p)")
	}
	iv := Bounded(1, 3)
	if got := Globally(p, &iv).String(); got != "G[1,3](p)" {
		t.Errorf("String() = %q, want %q", got, "G[1,3](p)")
	}
}

func TestConjunctionRequiresNonEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Conjunction() with no children should panic")
		}
	}()
	Conjunction()
}
