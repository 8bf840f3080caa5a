// Package stdlib provides a small set of ready-made oracle.Oracle
// backends for common predicate shapes, so fixtures and the CLI don't
// need to hand-write a Func for "this predicate is periodic" or "this
// predicate becomes permanently true after some threshold".
package stdlib

import (
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/oracle"
)

// Periodic returns an oracle.Oracle whose predicates are known true at
// the positions of [0, 2*period) congruent to phase modulo period, and
// known false at the other positions of that range — a finite prefix of
// a fact that recurs, such as "it is the start of a billing cycle".
// Nothing is known from 2*period onward.
func Periodic(period, phase int) oracle.Oracle {
	if period <= 0 {
		panic("stdlib: Periodic requires a positive period")
	}
	return oracle.Func(func(name string, terms []string) (intset.Set, intset.Set, error) {
		var trueElems, falseElems []int
		for t := 0; t < period; t++ {
			if t%period == phase%period {
				trueElems = append(trueElems, t)
			} else {
				falseElems = append(falseElems, t)
			}
		}
		// Neither set is tail-infinite: periodicity repeats the same
		// finite witness pattern rather than settling into one.
		return buildPeriodic(trueElems, period), buildPeriodic(falseElems, period)
	})
}

func buildPeriodic(residues []int, period int) intset.Set {
	if len(residues) == 0 {
		return intset.Empty()
	}
	var elems []int
	// Witness two full periods so intset.Equals (which only compares a
	// tail-infinite set's contiguous suffix) never has to guess at a
	// pattern from a single period's worth of elements — this oracle
	// reports a periodic, not eventually-constant, fact, so callers get
	// a finite set and must intersect it with their own window.
	for cycle := 0; cycle < 2; cycle++ {
		for _, r := range residues {
			elems = append(elems, r+cycle*period)
		}
	}
	return intset.New(elems...)
}

// Threshold returns an oracle.Oracle whose predicates are known false
// before `at` and known true from `at` onward — the oracle analogue of
// a one-shot latch, such as "the contract has been deployed".
func Threshold(at int) oracle.Oracle {
	if at < 0 {
		panic("stdlib: Threshold requires a non-negative position")
	}
	return oracle.Func(func(name string, terms []string) (intset.Set, intset.Set, error) {
		trueSet := intset.NewTail(at)
		var falseElems []int
		for t := 0; t < at; t++ {
			falseElems = append(falseElems, t)
		}
		return trueSet, intset.New(falseElems...), nil
	})
}

// Always returns an oracle.Oracle whose predicates are known true at
// every position — the universal fact, used in fixtures to force a
// short-circuit in oracle.Cache.
func Always() oracle.Oracle {
	return oracle.Func(func(name string, terms []string) (intset.Set, intset.Set, error) {
		return intset.N0(), intset.Empty(), nil
	})
}

// Never is Always's dual: known false everywhere.
func Never() oracle.Oracle {
	return oracle.Func(func(name string, terms []string) (intset.Set, intset.Set, error) {
		return intset.Empty(), intset.N0(), nil
	})
}
