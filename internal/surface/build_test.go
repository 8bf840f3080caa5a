package surface

import (
	"testing"

	"ltlsimplify/internal/formula"
)

func TestBuildsBoundedGlobally(t *testing.T) {
	f, errs, err := Build("<test>", "G[0,3] p")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", errs)
	}
	u, ok := f.(formula.Unary)
	if !ok || u.Op != formula.OpG {
		t.Fatalf("got %#v, want Unary{Op: OpG}", f)
	}
	if u.Interval.A != 0 || u.Interval.B == nil || *u.Interval.B != 3 {
		t.Fatalf("got interval %v, want [0,3]", u.Interval)
	}
}

func TestBuildsUntilWithInterval(t *testing.T) {
	f, errs, err := Build("<test>", "p U[1,5] q")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", errs)
	}
	b, ok := f.(formula.Binary)
	if !ok || b.Op != formula.OpUntil {
		t.Fatalf("got %#v, want Binary{Op: OpUntil}", f)
	}
}

func TestBuildsOnceWithLongFormSpelling(t *testing.T) {
	f, errs, err := Build("<test>", "Once[0,2] OnRamp(v1)")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", errs)
	}
	u, ok := f.(formula.Unary)
	if !ok || u.Op != formula.OpO {
		t.Fatalf("got %#v, want Unary{Op: OpO}", f)
	}
	pred, ok := u.Child.(formula.Predicate)
	if !ok || pred.Name != "OnRamp" || len(pred.Terms) != 1 {
		t.Fatalf("got %#v, want Predicate{Name: OnRamp, Terms: [v1]}", u.Child)
	}
}

func TestBuildFlagsInvertedInterval(t *testing.T) {
	_, errs, err := Build("<test>", "G[3,1] p")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected an inverted-interval error")
	}
}

func TestBuildFlagsEmptyConjunction(t *testing.T) {
	_, errs, err := Build("<test>", "conjunction()")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected an empty-multi-operator error")
	}
}

func TestBuildNestedLogic(t *testing.T) {
	f, errs, err := Build("<test>", "not p and q")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", errs)
	}
	b, ok := f.(formula.Binary)
	if !ok || b.Op != formula.OpAnd {
		t.Fatalf("got %#v, want Binary{Op: OpAnd}", f)
	}
	notLeft, ok := b.Left.(formula.Unary)
	if !ok || notLeft.Op != formula.OpNot {
		t.Fatalf("got %#v, want Unary{Op: OpNot}", b.Left)
	}
}
