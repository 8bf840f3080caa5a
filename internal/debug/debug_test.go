package debug

import (
	"strings"
	"testing"

	"ltlsimplify/internal/formula"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/simplmap"
)

func TestPrintSetShowsContiguousFrom(t *testing.T) {
	s := intset.NewTail(0, 3)
	out := PrintSet(s, 5)
	if !strings.Contains(out, "contiguous from 3") {
		t.Errorf("PrintSet(%v) = %q, want a contiguous-from marker", s, out)
	}
}

func TestPrintMapListsEveryFormula(t *testing.T) {
	m := simplmap.New()
	p := formula.AtomicProposition{Name: "p"}
	m.AddIn(p, intset.New(0, 1))
	m.AddIn(formula.True{}, intset.New(2))

	out := PrintMap(m, 3)
	if !strings.Contains(out, "p") || !strings.Contains(out, "True") {
		t.Errorf("PrintMap missing an entry: %q", out)
	}
}

func TestUnfoldListsPositions(t *testing.T) {
	m := simplmap.New()
	p := formula.AtomicProposition{Name: "p"}
	m.AddIn(p, intset.NewTail(1))

	got := Unfold(m, p, 3)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Unfold = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Unfold[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
