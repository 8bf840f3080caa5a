package simplmap

import (
	"testing"

	"ltlsimplify/internal/formula"
	"ltlsimplify/internal/intset"
)

func TestAddInAccumulatesByUnion(t *testing.T) {
	m := New()
	p := formula.AtomicProposition{Name: "p"}
	m.AddIn(p, intset.New(1, 2))
	m.AddIn(p, intset.New(2, 3))
	want := intset.New(1, 2, 3)
	if !m.Get(p).Equals(want) {
		t.Errorf("Get(p) = %v, want %v", m.Get(p), want)
	}
}

func TestGetAtFindsUniqueFormula(t *testing.T) {
	m := New()
	p := formula.AtomicProposition{Name: "p"}
	q := formula.AtomicProposition{Name: "q"}
	m.AddIn(p, intset.New(0, 1))
	m.AddIn(q, intset.New(2, 3))

	f, ok := m.GetAt(1)
	if !ok || !f.Equal(p) {
		t.Errorf("GetAt(1) = %v, want p", f)
	}
	f, ok = m.GetAt(3)
	if !ok || !f.Equal(q) {
		t.Errorf("GetAt(3) = %v, want q", f)
	}
	if _, ok := m.GetAt(99); ok {
		t.Errorf("GetAt(99) should report not found")
	}
}

func TestNonConstantExcludesTrueFalse(t *testing.T) {
	m := New()
	p := formula.AtomicProposition{Name: "p"}
	m.AddIn(formula.True{}, intset.New(0))
	m.AddIn(formula.False{}, intset.New(1))
	m.AddIn(p, intset.New(2))

	nc := m.NonConstant()
	if len(nc) != 1 || !nc[0].Equal(p) {
		t.Errorf("NonConstant() = %v, want [p]", nc)
	}
}

func TestNoChangeStartUnknownWithoutTailEntry(t *testing.T) {
	m := New()
	m.AddIn(formula.True{}, intset.New(0, 1, 2))
	if _, ok := m.NoChangeStart(); ok {
		t.Errorf("NoChangeStart should report unknown when no entry is tail-infinite")
	}
}

func TestNoChangeStartIsMaxOverTailEntries(t *testing.T) {
	m := New()
	m.AddIn(formula.True{}, intset.NewTail(0, 5))
	m.AddIn(formula.False{}, intset.NewTail(0, 9))
	start, ok := m.NoChangeStart()
	if !ok || start != 9 {
		t.Errorf("NoChangeStart() = (%d,%v), want (9,true)", start, ok)
	}
}
