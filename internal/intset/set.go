// Package intset implements the eventually-periodic integer-set algebra:
// subsets of ℕ₀ represented as a finite witness set plus
// a boolean tail flag meaning "and everything past here". The
// representation stays finite no matter how the set's semantic
// cardinality behaves, which is what lets the simplifier terminate over
// sets like "every position from now on".
package intset

import "fmt"

// Set represents a subset of ℕ₀. The zero value is not valid; use Empty,
// New, NewTail, N0 or FromInterval.
//
// Semantics: ⟦S⟧ = elems ∪ (tail ? {n : n > max(elems)} : ∅). A Set is
// normalized so that tail=true never pairs with an empty elems: the
// constructors substitute {0} in that case, per the invariant that
// "tail-true from nothing" means all of ℕ₀.
type Set struct {
	elems map[int]struct{}
	tail  bool
}

func normalize(elems map[int]struct{}, tail bool) Set {
	if tail && len(elems) == 0 {
		elems = map[int]struct{}{0: {}}
	}
	return Set{elems: elems, tail: tail}
}

// Empty returns the empty set.
func Empty() Set {
	return Set{elems: map[int]struct{}{}, tail: false}
}

// New returns the finite set containing exactly elems.
func New(elems ...int) Set {
	m := make(map[int]struct{}, len(elems))
	for _, e := range elems {
		if e < 0 {
			panic(fmt.Sprintf("intset: negative element %d", e))
		}
		m[e] = struct{}{}
	}
	return Set{elems: m, tail: false}
}

// NewTail returns the tail-infinite set whose finite witness is elems:
// every integer greater than max(elems) is also a member.
func NewTail(elems ...int) Set {
	m := make(map[int]struct{}, len(elems))
	for _, e := range elems {
		if e < 0 {
			panic(fmt.Sprintf("intset: negative element %d", e))
		}
		m[e] = struct{}{}
	}
	return normalize(m, true)
}

// N0 returns the set of all non-negative integers.
func N0() Set {
	return NewTail(0)
}

// FromInterval returns {a, ..., b}, or the tail-infinite singleton at a
// when b is nil (meaning ∞). Returns Empty() when b is non-nil and < a.
func FromInterval(a int, b *int) Set {
	if b == nil {
		return NewTail(a)
	}
	if *b < a {
		return Empty()
	}
	m := make(map[int]struct{}, *b-a+1)
	for i := a; i <= *b; i++ {
		m[i] = struct{}{}
	}
	return Set{elems: m, tail: false}
}

func (s Set) maxElem() int {
	m := -1
	for k := range s.elems {
		if k > m {
			m = k
		}
	}
	return m
}

// add inserts n into the witness set. Internal-use only, while building
// a Set incrementally; refuses insertions beyond max(elems) when tail is
// set, since that would fall inside the implicit tail and adding it
// explicitly would not change the represented set but would break the
// "witness set holds only the irregular prefix" invariant.
func (s *Set) add(n int) {
	if n < 0 {
		return
	}
	if s.tail && n >= s.maxElem() {
		return
	}
	s.elems[n] = struct{}{}
}

// Contains reports whether n is a member of the represented set.
func (s Set) Contains(n int) bool {
	if n < 0 {
		return false
	}
	if _, ok := s.elems[n]; ok {
		return true
	}
	return s.tail && n > s.maxElem()
}

// IsEmpty reports whether the represented set is ∅.
func (s Set) IsEmpty() bool {
	return !s.tail && len(s.elems) == 0
}

// IsInf reports whether the set is tail-infinite.
func (s Set) IsInf() bool {
	return s.tail
}

// MinInfStart returns the smallest i such that [i, max(elems)] ⊆ elems,
// i.e. the position from which the set is contiguously populated to
// infinity. Precondition: IsInf().
func (s Set) MinInfStart() int {
	if !s.tail {
		panic("intset: MinInfStart on a non-tail set")
	}
	m := s.maxElem()
	start := m
	for i := m - 1; i >= 0; i-- {
		if _, ok := s.elems[i]; ok {
			start = i
		} else {
			break
		}
	}
	return start
}

// MinCompleteToMaxStart is MinInfStart's analogue for finite sets: the
// start of the maximal contiguous run ending at max(elems). Used by the
// simplification map to find a finite entry's own "stable tail" start.
// Precondition: not empty.
func (s Set) MinCompleteToMaxStart() int {
	if len(s.elems) == 0 {
		panic("intset: MinCompleteToMaxStart on an empty set")
	}
	m := s.maxElem()
	start := m
	for i := m - 1; i >= 0; i-- {
		if _, ok := s.elems[i]; ok {
			start = i
		} else {
			break
		}
	}
	return start
}

// IsN0 reports whether the represented set equals ℕ₀.
func (s Set) IsN0() bool {
	return s.tail && s.MinInfStart() == 0
}

// Min returns the smallest member. Precondition: not empty.
func (s Set) Min() int {
	if s.IsEmpty() {
		panic("intset: Min on an empty set")
	}
	m := -1
	for k := range s.elems {
		if m == -1 || k < m {
			m = k
		}
	}
	return m
}

// Max returns the largest member. Precondition: not IsInf(). Returns -1
// for the empty set, matching the source implementation.
func (s Set) Max() int {
	if s.tail {
		panic("intset: Max on a tail-infinite set")
	}
	if len(s.elems) == 0 {
		return -1
	}
	return s.maxElem()
}

// Equals reports semantic equality: the two Sets represent the same
// subset of ℕ₀. Differing tail flags never compare equal (the
// normalization invariant rules out the only case where they logically
// could: an empty tail-true set does not exist).
func (s Set) Equals(o Set) bool {
	if s.tail != o.tail {
		return false
	}
	if !s.tail {
		if len(s.elems) != len(o.elems) {
			return false
		}
		for k := range s.elems {
			if _, ok := o.elems[k]; !ok {
				return false
			}
		}
		return true
	}
	h := s.MinInfStart()
	if oh := o.MinInfStart(); oh > h {
		h = oh
	}
	for i := 0; i <= h; i++ {
		if s.Contains(i) != o.Contains(i) {
			return false
		}
	}
	return true
}

// Union returns the exact union over ⟦·⟧.
func (s Set) Union(o Set) Set {
	switch {
	case !s.tail && !o.tail:
		m := make(map[int]struct{}, len(s.elems)+len(o.elems))
		for k := range s.elems {
			m[k] = struct{}{}
		}
		for k := range o.elems {
			m[k] = struct{}{}
		}
		return Set{elems: m, tail: false}
	case s.tail && !o.tail:
		h := s.MinInfStart()
		m := map[int]struct{}{}
		for i := 0; i <= h; i++ {
			if s.Contains(i) || o.Contains(i) {
				m[i] = struct{}{}
			}
		}
		return normalize(m, true)
	case !s.tail && o.tail:
		return o.Union(s)
	default:
		h := s.MinInfStart()
		if oh := o.MinInfStart(); oh > h {
			h = oh
		}
		m := map[int]struct{}{}
		for i := 0; i <= h; i++ {
			if s.Contains(i) || o.Contains(i) {
				m[i] = struct{}{}
			}
		}
		return normalize(m, true)
	}
}

// Intersection returns the exact intersection over ⟦·⟧. Never produces a
// tail-infinite empty set, and the intersection of an empty set with
// anything is always Empty() with tail=false.
func (s Set) Intersection(o Set) Set {
	if s.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	switch {
	case !s.tail && !o.tail:
		m := map[int]struct{}{}
		for k := range s.elems {
			if _, ok := o.elems[k]; ok {
				m[k] = struct{}{}
			}
		}
		return Set{elems: m, tail: false}
	case s.tail && !o.tail:
		m := map[int]struct{}{}
		for k := range o.elems {
			if s.Contains(k) {
				m[k] = struct{}{}
			}
		}
		return Set{elems: m, tail: false}
	case !s.tail && o.tail:
		return o.Intersection(s)
	default:
		h := s.MinInfStart()
		if oh := o.MinInfStart(); oh > h {
			h = oh
		}
		m := map[int]struct{}{}
		for i := 0; i <= h+1; i++ {
			if s.Contains(i) && o.Contains(i) {
				m[i] = struct{}{}
			}
		}
		return normalize(m, true)
	}
}

// Complement returns ℕ₀ \ ⟦S⟧. The complement of the empty set is ℕ₀;
// the complement of a tail-infinite set is always finite (tail=false).
func (s Set) Complement() Set {
	if len(s.elems) == 0 {
		return N0()
	}
	if s.tail {
		nMax := s.MinInfStart()
		m := map[int]struct{}{}
		for i := 0; i < nMax; i++ {
			if !s.Contains(i) {
				m[i] = struct{}{}
			}
		}
		return Set{elems: m, tail: false}
	}
	nMax := s.Max()
	m := map[int]struct{}{}
	for i := 0; i < nMax+2; i++ {
		if !s.Contains(i) {
			m[i] = struct{}{}
		}
	}
	return normalize(m, true)
}

// Without returns S ∩ ¬other.
func (s Set) Without(o Set) Set {
	return s.Intersection(o.Complement())
}

// Addition shifts every member by n; results below zero are dropped.
// The tail flag is preserved, since shifting a periodic tail by a finite
// amount is still periodic.
func (s Set) Addition(n int) Set {
	m := map[int]struct{}{}
	for x := range s.elems {
		if x+n >= 0 {
			m[x+n] = struct{}{}
		}
	}
	return normalize(m, s.tail)
}

// ContainsAny reports whether any i in [a,b] is a member; b nil means ∞.
func (s Set) ContainsAny(a int, b *int) bool {
	if s.IsEmpty() {
		return false
	}
	if b != nil {
		for i := a; i <= *b; i++ {
			if s.Contains(i) {
				return true
			}
		}
		return false
	}
	if s.tail {
		return true
	}
	for i := a; i <= s.Max(); i++ {
		if s.Contains(i) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every i in [a,b] is a member; b nil means
// ∞. A bound with b < a is vacuously true.
func (s Set) ContainsAll(a int, b *int) bool {
	if b != nil {
		if *b < a {
			return true
		}
		for i := a; i <= *b; i++ {
			if !s.Contains(i) {
				return false
			}
		}
		return true
	}
	if s.tail {
		return s.MinInfStart() <= a
	}
	return false
}

// Run is a maximal contiguous block of a Set: [Lo, Hi], or [Lo, ∞) when
// Hi is nil.
type Run struct {
	Lo int
	Hi *int
}

// Set reconstructs the Set represented by this run.
func (r Run) Set() Set {
	return FromInterval(r.Lo, r.Hi)
}

// Partition decomposes ⟦S⟧ into its maximal contiguous runs, ascending.
func (s Set) Partition() []Run {
	if s.IsEmpty() {
		return nil
	}
	var nMax int
	if s.tail {
		nMax = s.MinInfStart()
	} else {
		nMax = s.Max()
	}
	var runs []Run
	recording := false
	for i := 0; i <= nMax; i++ {
		if s.Contains(i) {
			if !recording {
				runs = append(runs, Run{Lo: i})
				recording = true
			}
		} else if recording {
			hi := i - 1
			runs[len(runs)-1].Hi = &hi
			recording = false
		}
	}
	if recording {
		if s.tail {
			runs[len(runs)-1].Hi = nil
		} else {
			hi := nMax
			runs[len(runs)-1].Hi = &hi
		}
	}
	return runs
}

// Split enumerates the non-empty contiguous intersections of any
// partition block of A with any partition block of B, clipped to
// window, used by the Until simplifier to enumerate boundary cases. It
// is the cartesian join of both input families' partitions, by design
// (see DESIGN.md's Open Questions).
func Split(a, b []Set, window Set) []Run {
	var partsA, partsB []Run
	for _, s := range a {
		if !s.IsEmpty() {
			partsA = append(partsA, s.Partition()...)
		}
	}
	for _, s := range b {
		if !s.IsEmpty() {
			partsB = append(partsB, s.Partition()...)
		}
	}
	var result []Run
	for _, ra := range partsA {
		for _, rb := range partsB {
			x := ra.Set().Intersection(rb.Set()).Intersection(window)
			if x.IsEmpty() {
				continue
			}
			if x.IsInf() {
				result = append(result, Run{Lo: x.Min(), Hi: nil})
			} else {
				hi := x.Max()
				result = append(result, Run{Lo: x.Min(), Hi: &hi})
			}
		}
	}
	return result
}

// Iterate walks the set in ascending order from 0 up to and including
// horizon, calling f for each member. f returns false to stop early.
// Tail-infinite sets are conceptually unbounded, so callers must supply
// their own horizon; Iterate never walks past it.
func (s Set) Iterate(horizon int, f func(int) bool) {
	for i := 0; i <= horizon; i++ {
		if s.Contains(i) {
			if !f(i) {
				return
			}
		}
	}
}

// String renders a short debug form listing the set's runs, e.g.
// "{0,2,5..}" for a tail-infinite set or "{1,3-4}" for a finite one.
func (s Set) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	runs := s.Partition()
	out := "{"
	for i, r := range runs {
		if i > 0 {
			out += ","
		}
		if r.Hi == nil {
			out += fmt.Sprintf("%d..", r.Lo)
		} else if *r.Hi == r.Lo {
			out += fmt.Sprintf("%d", r.Lo)
		} else {
			out += fmt.Sprintf("%d-%d", r.Lo, *r.Hi)
		}
	}
	return out + "}"
}

// WitnessMax returns max(elems) — the witness set's maximum, regardless
// of the tail flag. This differs from Max() (which panics when
// IsInf()): several C5 operator recipes need the raw witness boundary
// even for a tail-infinite set, since that's where its finite,
// possibly-irregular prefix ends.
func (s Set) WitnessMax() int {
	return s.maxElem()
}
