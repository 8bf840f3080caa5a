// Package oracle defines the knowledge-oracle contract:
// for a predicate name and a tuple of constant terms, the oracle
// reports the positions where the predicate is known true and known
// false. Cache wraps any Oracle with memoization and an early exit once
// a predicate is known true (or false) everywhere.
package oracle

import (
	"errors"
	"fmt"

	"ltlsimplify/internal/intset"
)

// ErrArityMismatch is returned when a predicate is checked with a
// different number of terms than it was registered with.
var ErrArityMismatch = errors.New("oracle: arity mismatch")

// Oracle answers knowledge queries about predicate instances. Check
// must be safe to call repeatedly with the same arguments (Cache relies
// on that); an unregistered name is a recoverable condition, not an
// error: return (Empty(), Empty(), nil).
type Oracle interface {
	Check(name string, terms []string) (trueSet, falseSet intset.Set, err error)
}

// Func adapts a plain function to the Oracle interface.
type Func func(name string, terms []string) (intset.Set, intset.Set, error)

func (f Func) Check(name string, terms []string) (intset.Set, intset.Set, error) {
	return f(name, terms)
}

// Registry records the expected arity for each predicate name, so
// callers can validate a Predicate AST node before ever reaching the
// oracle. Registering the same name twice with different arities is a
// caller bug and panics rather than being silently accepted.
type Registry struct {
	arity map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{arity: map[string]int{}}
}

// Register records name's expected arity.
func (r *Registry) Register(name string, arity int) {
	if existing, ok := r.arity[name]; ok && existing != arity {
		panic(fmt.Sprintf("oracle: %q already registered with arity %d, got %d", name, existing, arity))
	}
	r.arity[name] = arity
}

// Arity returns the registered arity for name, or (0, false) if unknown.
func (r *Registry) Arity(name string) (int, bool) {
	a, ok := r.arity[name]
	return a, ok
}

// Validate checks that terms has the registered arity for name; an
// unregistered name is not an error here (that's handled by the
// oracle's "nothing known" fallback), only an arity mismatch against a
// known registration is.
func (r *Registry) Validate(name string, terms []string) error {
	if want, ok := r.arity[name]; ok && want != len(terms) {
		return fmt.Errorf("%w: %q expects %d terms, got %d", ErrArityMismatch, name, want, len(terms))
	}
	return nil
}

type cacheKey struct {
	name string
	key  string // joined terms, "\x00"-separated
}

func joinTerms(terms []string) string {
	out := ""
	for i, t := range terms {
		if i > 0 {
			out += "\x00"
		}
		out += t
	}
	return out
}

type cacheEntry struct {
	trueSet, falseSet intset.Set
}

// Cache wraps an Oracle, memoizing per (name, terms) and, per name,
// remembering whether any prior lookup already proved the predicate
// universally true or false (trueSet or falseSet equal to N0()) — once
// that happens, further lookups for that name short-circuit to the
// universal result without consulting the underlying Oracle or the
// per-terms memo.
type Cache struct {
	underlying Oracle
	byKey      map[cacheKey]cacheEntry
	universal  map[string]cacheEntry
}

// NewCache wraps underlying with memoization.
func NewCache(underlying Oracle) *Cache {
	return &Cache{
		underlying: underlying,
		byKey:      map[cacheKey]cacheEntry{},
		universal:  map[string]cacheEntry{},
	}
}

func (c *Cache) Check(name string, terms []string) (intset.Set, intset.Set, error) {
	if u, ok := c.universal[name]; ok {
		return u.trueSet, u.falseSet, nil
	}
	key := cacheKey{name: name, key: joinTerms(terms)}
	if e, ok := c.byKey[key]; ok {
		return e.trueSet, e.falseSet, nil
	}
	trueSet, falseSet, err := c.underlying.Check(name, terms)
	if err != nil {
		return intset.Empty(), intset.Empty(), err
	}
	c.byKey[key] = cacheEntry{trueSet: trueSet, falseSet: falseSet}
	if trueSet.IsN0() || falseSet.IsN0() {
		c.universal[name] = cacheEntry{trueSet: trueSet, falseSet: falseSet}
	}
	return trueSet, falseSet, nil
}
