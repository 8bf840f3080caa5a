package interval

import "ltlsimplify/internal/intset"

// And computes the true/false sets of (l and r) from the operands'.
func And(trueL, falseL, trueR, falseR intset.Set) (intset.Set, intset.Set) {
	return trueL.Intersection(trueR), falseL.Union(falseR)
}

// Or computes the true/false sets of (l or r) from the operands'.
func Or(trueL, falseL, trueR, falseR intset.Set) (intset.Set, intset.Set) {
	return trueL.Union(trueR), falseL.Intersection(falseR)
}

// Imp computes the true/false sets of (l imp r) from the operands'.
func Imp(trueL, falseL, trueR, falseR intset.Set) (intset.Set, intset.Set) {
	return falseL.Union(trueR), trueL.Intersection(falseR)
}

// Iff computes the true/false sets of (l iff r) from the operands'.
func Iff(trueL, falseL, trueR, falseR intset.Set) (intset.Set, intset.Set) {
	t := trueL.Intersection(trueR).Union(falseL.Intersection(falseR))
	f := trueL.Intersection(falseR).Union(falseL.Intersection(trueR))
	return t, f
}

// Not swaps the true/false sets.
func Not(trueR, falseR intset.Set) (intset.Set, intset.Set) {
	return falseR, trueR
}

// X shifts the child's true/false sets back by a positions: q holds at t
// under X[a] iff the child holds at t+a.
func X(trueR, falseR intset.Set, a int) (intset.Set, intset.Set) {
	return trueR.Addition(-a), falseR.Addition(-a)
}

// G computes the true/false sets of G[a,b] r from r's true/false sets.
func G(trueR, falseR intset.Set, a int, b *int) (intset.Set, intset.Set) {
	trueSet := gTrue(trueR, a, b)
	falseSet := gFalse(falseR, a, b)
	return trueSet, falseSet
}

func gTrue(trueR intset.Set, a int, b *int) intset.Set {
	if trueR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		if trueR.IsInf() {
			return intset.NewTail(max0(trueR.MinInfStart() - a))
		}
		return intset.Empty()
	}
	bb := *b
	if trueR.IsInf() {
		witnessMax := trueR.WitnessMax()
		set := buildFinite(0, witnessMax, func(t int) bool {
			return trueR.ContainsAll(t+a, ptr(t+bb))
		})
		satInf := trueR.MinInfStart() - a
		return set.Union(intset.NewTail(max0(satInf)))
	}
	witnessMax := trueR.WitnessMax()
	return buildFinite(0, witnessMax, func(t int) bool {
		return trueR.ContainsAll(t+a, ptr(t+bb))
	})
}

func gFalse(falseR intset.Set, a int, b *int) intset.Set {
	if falseR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		if falseR.IsInf() {
			return intset.N0()
		}
		maxVal := falseR.Max()
		hi := maxVal - a
		if hi < 0 {
			return intset.Empty()
		}
		return buildFinite(0, hi, func(int) bool { return true })
	}
	bb := *b
	if falseR.IsInf() {
		maxFalseVal := falseR.MinInfStart()
		set := buildFinite(0, maxFalseVal, func(t int) bool {
			return falseR.ContainsAny(t+a, ptr(t+bb))
		})
		return set.Union(intset.NewTail(max0(maxFalseVal - bb)))
	}
	maxFalseVal := falseR.Max()
	return buildFinite(0, maxFalseVal, func(t int) bool {
		return falseR.ContainsAny(t+a, ptr(t+bb))
	})
}

// F computes the true/false sets of F[a,b] r from r's true/false sets.
func F(trueR, falseR intset.Set, a int, b *int) (intset.Set, intset.Set) {
	return fTrue(trueR, a, b), fFalse(falseR, a, b)
}

func fTrue(trueR intset.Set, a int, b *int) intset.Set {
	if trueR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		if trueR.IsInf() {
			return intset.N0()
		}
		witnessMax := trueR.WitnessMax()
		set := buildFinite(0, witnessMax, func(int) bool { return true })
		return set.Addition(-a)
	}
	bb := *b
	if trueR.IsInf() {
		nmax := trueR.MinInfStart()
		return buildTail(0, nmax, func(t int) bool {
			return trueR.ContainsAny(t+a, ptr(t+bb))
		})
	}
	maxTrueVal := trueR.Max()
	return buildFinite(0, maxTrueVal, func(t int) bool {
		return trueR.ContainsAny(t+a, ptr(t+bb))
	})
}

func fFalse(falseR intset.Set, a int, b *int) intset.Set {
	if falseR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		if falseR.IsInf() {
			return intset.NewTail(max0(falseR.MinInfStart() - a))
		}
		return intset.Empty()
	}
	bb := *b
	if falseR.IsInf() {
		maxFalseVal := falseR.MinInfStart()
		set := buildFinite(0, maxFalseVal, func(t int) bool {
			return falseR.ContainsAll(t+a, ptr(t+bb))
		})
		return set.Union(intset.NewTail(maxFalseVal))
	}
	maxFalseVal := falseR.Max()
	return buildFinite(0, maxFalseVal, func(t int) bool {
		return falseR.ContainsAll(t+a, ptr(t+bb))
	})
}

// O computes the true/false sets of O[a,b] r (historical "once") from
// r's true/false sets. Positions are shifted forward, the mirror image
// of F's backward shift, since O looks into the past instead of the
// future.
func O(trueR, falseR intset.Set, a int, b *int) (intset.Set, intset.Set) {
	return oTrue(trueR, a, b), oFalse(falseR, a, b)
}

func oTrue(trueR intset.Set, a int, b *int) intset.Set {
	if trueR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		return intset.FromInterval(trueR.Min()+a, nil)
	}
	bb := *b
	witnessMax := trueR.WitnessMax()
	hi := witnessMax + bb
	set := buildFinite(0, hi, func(t int) bool {
		lo := max0(t - bb)
		return trueR.ContainsAny(lo, ptr(t-a))
	})
	if trueR.IsInf() {
		return set.Union(intset.NewTail(trueR.MinInfStart() + a))
	}
	return set
}

func oFalse(falseR intset.Set, a int, b *int) intset.Set {
	if falseR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		// False at t only while r is false on all of [0, t-a]: the
		// prefix of r's false set, shifted by a, plus the vacuous [0, a).
		k := 0
		for falseR.Contains(k) {
			if falseR.IsInf() && k >= falseR.MinInfStart() {
				return intset.N0()
			}
			k++
		}
		if a+k == 0 {
			return intset.Empty()
		}
		hi := a + k - 1
		return intset.FromInterval(0, &hi)
	}
	bb := *b
	witnessMax := falseR.WitnessMax()
	hi := witnessMax + bb
	set := buildFinite(0, hi, func(t int) bool {
		lo := max0(t - bb)
		return falseR.ContainsAll(lo, ptr(t-a))
	})
	if falseR.IsInf() {
		return set.Union(intset.NewTail(falseR.MinInfStart() + a + bb))
	}
	return set
}

// P computes the true/false sets of P[a,b] r (historical "previously",
// the bounded-past dual of O) from r's true/false sets.
func P(trueR, falseR intset.Set, a int, b *int) (intset.Set, intset.Set) {
	return pTrue(trueR, a, b), pFalse(falseR, a, b)
}

func pTrue(trueR intset.Set, a int, b *int) intset.Set {
	if trueR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		return trueR.Addition(a)
	}
	bb := *b
	witnessMax := trueR.WitnessMax()
	hi := witnessMax + bb
	set := buildFinite(0, hi, func(t int) bool {
		lo := max0(t - bb)
		return trueR.ContainsAll(lo, ptr(t-a))
	})
	if trueR.IsInf() {
		return set.Union(intset.NewTail(trueR.MinInfStart() + a + bb))
	}
	return set
}

func pFalse(falseR intset.Set, a int, b *int) intset.Set {
	if falseR.IsEmpty() {
		return intset.Empty()
	}
	if b == nil {
		return falseR.Addition(a)
	}
	bb := *b
	witnessMax := falseR.WitnessMax()
	hi := witnessMax + bb
	set := buildFinite(0, hi, func(t int) bool {
		lo := max0(t - bb)
		return falseR.ContainsAny(lo, ptr(t-a))
	})
	if falseR.IsInf() {
		return set.Union(intset.NewTail(falseR.MinInfStart() + a))
	}
	return set
}

// U computes the true/false sets of (l U[a,b] r) from the operands'.
// This is the densest recipe: each of the true and false computations
// branches eight ways on (l finite/tail) x (r finite/tail) x (b finite/∞),
// mirroring interval_functions.py's interval_U case-by-case.
func U(trueL, falseL, trueR, falseR intset.Set, a int, b *int) (intset.Set, intset.Set) {
	return uTrue(trueL, trueR, a, b), uFalse(falseL, falseR, a, b)
}

func uTrue(trueL, trueR intset.Set, a int, b *int) intset.Set {
	if trueR.IsEmpty() {
		return intset.Empty()
	}
	sat := func(t, lo, hi int) bool {
		return anyN(lo, hi, func(n int) bool {
			return trueR.Contains(t+n) && trueL.ContainsAll(t, ptr(t+n-1))
		})
	}
	if b == nil {
		switch {
		case !trueL.IsInf() && !trueR.IsInf():
			nmax := trueR.Max()
			return buildFinite(0, nmax, func(t int) bool { return sat(t, a, a+nmax) })
		case trueL.IsInf() && !trueR.IsInf():
			nmax := trueR.Max()
			return buildFinite(0, nmax, func(t int) bool { return sat(t, a, a+nmax) })
		case !trueL.IsInf() && trueR.IsInf():
			nmax := maxInt(trueL.Max(), trueR.MinInfStart())
			set := buildFinite(0, nmax, func(t int) bool { return sat(t, a, a+nmax) })
			if a == 0 {
				set = set.Union(trueR)
			}
			return set
		default:
			nmax := maxInt(trueL.MinInfStart(), trueR.MinInfStart())
			return buildTail(0, nmax, func(t int) bool { return sat(t, a, nmax+a) })
		}
	}
	bb := *b
	switch {
	case !trueL.IsInf() && !trueR.IsInf():
		nmax := maxInt(trueL.Max(), trueR.Max())
		return buildFinite(0, nmax, func(t int) bool { return sat(t, a, bb) })
	case trueL.IsInf() && !trueR.IsInf():
		nmax := trueR.Max()
		return buildFinite(0, nmax, func(t int) bool { return sat(t, a, bb) })
	case !trueL.IsInf() && trueR.IsInf():
		nmax := maxInt(trueL.Max(), trueR.MinInfStart())
		set := buildFinite(0, nmax, func(t int) bool { return sat(t, a, bb) })
		if a == 0 {
			set = set.Union(trueR)
		}
		return set
	default:
		nmax := maxInt(trueL.MinInfStart(), trueR.MinInfStart())
		set := buildFinite(0, nmax, func(t int) bool { return sat(t, a, bb) })
		return set.Union(intset.NewTail(nmax))
	}
}

func uFalse(falseL, falseR intset.Set, a int, b *int) intset.Set {
	if b == nil {
		return uFalseUnbounded(falseL, falseR, a)
	}
	return uFalseBounded(falseL, falseR, a, *b)
}

func uFalseUnbounded(falseL, falseR intset.Set, a int) intset.Set {
	switch {
	case !falseL.IsInf() && !falseR.IsInf():
		nmax := maxInt(falseL.Max(), falseR.Max())
		i2 := buildFinite(0, nmax, func(t int) bool {
			return falseL.ContainsAny(t, ptr(t+a-1))
		})
		i3 := buildFinite(0, nmax, func(t int) bool {
			return anyN(a, nmax-t, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		return i2.Union(i3)
	case falseL.IsInf() && !falseR.IsInf():
		nmax := maxInt(falseL.MinInfStart(), falseR.Max())
		var i2 intset.Set
		if a > 0 {
			i2 = buildTail(0, nmax, func(t int) bool {
				return falseL.ContainsAny(t, ptr(t+a-1))
			})
		} else {
			i2 = buildFinite(0, nmax, func(t int) bool {
				return falseL.ContainsAny(t, ptr(t+a-1))
			})
		}
		i3 := buildFinite(0, nmax, func(t int) bool {
			return anyN(a, nmax-t, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		return i2.Union(i3)
	case !falseL.IsInf() && falseR.IsInf():
		nmax := maxInt(falseL.Max(), falseR.MinInfStart())
		i1 := intset.NewTail(falseR.MinInfStart() - a)
		i2 := buildFinite(0, nmax, func(t int) bool {
			return falseL.ContainsAny(t, ptr(t+a-1))
		})
		i3 := buildFinite(0, nmax, func(t int) bool {
			return anyN(a, nmax, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		return i1.Union(i2).Union(i3)
	default:
		nmax := maxInt(falseL.MinInfStart(), falseR.MinInfStart())
		i1 := intset.NewTail(falseR.MinInfStart() - a)
		i2 := buildFinite(0, nmax, func(t int) bool {
			return falseL.ContainsAny(t, ptr(t+a-1))
		})
		i3 := buildFinite(0, nmax, func(t int) bool {
			return anyN(a, nmax, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		return i1.Union(i2).Union(i3)
	}
}

func uFalseBounded(falseL, falseR intset.Set, a, b int) intset.Set {
	switch {
	case !falseL.IsInf() && !falseR.IsInf():
		nmax := maxInt(falseL.Max(), falseR.Max())
		i1 := buildFinite(0, nmax, func(t int) bool {
			return falseR.ContainsAll(t+a, ptr(t+b))
		})
		i2 := buildFinite(0, nmax, func(t int) bool {
			return anyN(0, b, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		return i1.Union(i2)
	case falseL.IsInf() && !falseR.IsInf():
		nmax := maxInt(falseR.Max(), falseL.MinInfStart())
		i1 := buildFinite(0, nmax, func(t int) bool {
			return falseR.ContainsAll(t+a, ptr(t+b))
		})
		i2 := buildFinite(0, nmax, func(t int) bool {
			return anyN(0, b, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		union := i1.Union(i2)
		if a > 0 {
			return buildTail(0, nmax, func(t int) bool { return union.Contains(t) })
		}
		return union
	case !falseL.IsInf() && falseR.IsInf():
		nmax := falseR.MinInfStart()
		i1 := buildFinite(0, nmax, func(t int) bool {
			return falseR.ContainsAll(t+a, ptr(t+b))
		})
		i2 := buildFinite(0, nmax, func(t int) bool {
			return anyN(0, b, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		union := i1.Union(i2)
		return buildTail(0, nmax, func(t int) bool { return union.Contains(t) })
	default:
		nmax := maxInt(falseL.MinInfStart(), falseR.MinInfStart())
		i1 := buildFinite(0, nmax, func(t int) bool {
			return falseR.ContainsAll(t+a, ptr(t+b))
		})
		i2 := buildFinite(0, nmax, func(t int) bool {
			return anyN(0, b, func(n int) bool {
				return falseL.Contains(t+n) && falseR.ContainsAll(t+a, ptr(t+n))
			})
		})
		union := i1.Union(i2)
		return buildTail(0, nmax, func(t int) bool { return union.Contains(t) })
	}
}
