// Package simplmap implements the simplification map: a
// bidirectional association between residual formulas and the
// evaluation-set positions where each one applies.
package simplmap

import (
	"ltlsimplify/internal/formula"
	"ltlsimplify/internal/intset"
)

// Map is the function "position → residual formula", represented as a
// formula-keyed accumulation of position sets. Writes are
// union-accumulating: adding a formula at a set unions that set into
// whatever is already associated with the formula. Map does not itself
// enforce that the position sets assigned to distinct formulas are
// pairwise disjoint — that responsibility falls on the simplifier,
// which never emits overlapping assignments by construction.
type Map struct {
	entries []entry
}

type entry struct {
	f formula.Formula
	i intset.Set
}

// New returns an empty Map.
func New() *Map {
	return &Map{}
}

// lookup finds the entry index for f by structural equality. The
// entries slice is scanned rather than map-keyed by formula.Formula
// directly because formula values are not comparable with ==
// (interfaces wrapping structs containing slices); structural equality
// goes through Equal.
func (m *Map) lookup(f formula.Formula) (int, bool) {
	for i, e := range m.entries {
		if e.f.Equal(f) {
			return i, true
		}
	}
	return -1, false
}

// AddIn unions j into the position set already associated with f.
func (m *Map) AddIn(f formula.Formula, j intset.Set) {
	if j.IsEmpty() {
		return
	}
	if i, ok := m.lookup(f); ok {
		m.entries[i].i = m.entries[i].i.Union(j)
		return
	}
	m.entries = append(m.entries, entry{f: f, i: j})
}

// AddAt unions the singleton {t} into f's position set.
func (m *Map) AddAt(f formula.Formula, t int) {
	m.AddIn(f, intset.New(t))
}

// Get returns the position set where f is the residual, or Empty() if f
// never appears.
func (m *Map) Get(f formula.Formula) intset.Set {
	if i, ok := m.lookup(f); ok {
		return m.entries[i].i
	}
	return intset.Empty()
}

// GetAt returns the unique formula whose position set contains t, and
// whether one was found.
func (m *Map) GetAt(t int) (formula.Formula, bool) {
	for _, e := range m.entries {
		if e.i.Contains(t) {
			return e.f, true
		}
	}
	return nil, false
}

// Formulas returns every formula with a non-empty entry, in insertion
// order.
func (m *Map) Formulas() []formula.Formula {
	out := make([]formula.Formula, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.f
	}
	return out
}

// NonConstant returns every entry's formula excluding formula.True{} and
// formula.False{} — the source's F*.
func (m *Map) NonConstant() []formula.Formula {
	var out []formula.Formula
	for _, e := range m.entries {
		switch e.f.(type) {
		case formula.True, formula.False:
			continue
		default:
			out = append(out, e.f)
		}
	}
	return out
}

// NoChangeStart returns the smallest t* such that for all t >= t*,
// GetAt(t) names the same formula, and true if such a t* is known. It
// is the max, over every tail-infinite entry, of that entry's
// MinInfStart; if no entry is tail-infinite there is no known tail
// stability and the second return is false.
func (m *Map) NoChangeStart() (int, bool) {
	found := false
	best := 0
	for _, e := range m.entries {
		if !e.i.IsInf() {
			continue
		}
		start := e.i.MinInfStart()
		if !found || start > best {
			best = start
			found = true
		}
	}
	return best, found
}
