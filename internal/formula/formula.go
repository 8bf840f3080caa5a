// Package formula implements the immutable interval-timed LTL formula
// AST: constants, atomic propositions, predicates,
// unary/binary/multi temporal and logical operators, with structural
// equality and hashing, including interval bounds.
package formula

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Kind identifies the concrete variant of a Formula for fast dispatch
// in exhaustive switches.
type Kind int

const (
	KindTrue Kind = iota
	KindFalse
	KindAtomicProposition
	KindPredicate
	KindUnary
	KindBinary
	KindMulti
)

// Formula is the sum type over every AST variant. Implementations are
// immutable value types; callers compare and hash them structurally via
// Equal/Hash rather than by identity.
type Formula interface {
	Kind() Kind
	Equal(Formula) bool
	Hash() uint64
	String() string
	isFormula()
}

// Term is either a Variable or a Constant inside a Predicate's argument
// list.
type Term interface {
	isTerm()
	String() string
	equal(Term) bool
}

// Variable is an unbound predicate argument, e.g. the "x" in p(x).
type Variable struct{ Name string }

func (Variable) isTerm()            {}
func (v Variable) String() string   { return v.Name }
func (v Variable) equal(o Term) bool {
	w, ok := o.(Variable)
	return ok && w.Name == v.Name
}

// Constant is a bound predicate argument, e.g. the "v1" in p(v1).
type Constant struct{ Name string }

func (Constant) isTerm()            {}
func (c Constant) String() string   { return c.Name }
func (c Constant) equal(o Term) bool {
	w, ok := o.(Constant)
	return ok && w.Name == c.Name
}

// UnaryOp enumerates the temporal/logical operators carried by Unary.
type UnaryOp int

const (
	OpG UnaryOp = iota // Globally
	OpF                // Finally / Eventually
	OpX                // Next
	OpP                // Previously
	OpO                // Once
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpG:
		return "G"
	case OpF:
		return "F"
	case OpX:
		return "X"
	case OpP:
		return "P"
	case OpO:
		return "O"
	case OpNot:
		return "!"
	default:
		panic(fmt.Sprintf("formula: unknown UnaryOp %d", op))
	}
}

// BinaryOp enumerates the binary logical/temporal operators.
type BinaryOp int

const (
	OpAnd BinaryOp = iota
	OpOr
	OpImp
	OpIff
	OpUntil
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpImp:
		return "->"
	case OpIff:
		return "<->"
	case OpUntil:
		return "U"
	default:
		panic(fmt.Sprintf("formula: unknown BinaryOp %d", op))
	}
}

// MultiOp enumerates the variadic logical operators.
type MultiOp int

const (
	OpConjunction MultiOp = iota
	OpDisjunction
)

func (op MultiOp) String() string {
	switch op {
	case OpConjunction:
		return "conjunction"
	case OpDisjunction:
		return "disjunction"
	default:
		panic(fmt.Sprintf("formula: unknown MultiOp %d", op))
	}
}

// Interval is a closed interval [A, B] of non-negative integers, with B
// nil meaning ∞.
type Interval struct {
	A int
	B *int // nil == ∞
}

// Bounded constructs an interval with a finite upper bound.
func Bounded(a, b int) Interval { return Interval{A: a, B: &b} }

// Unbounded constructs an interval [a, ∞).
func Unbounded(a int) Interval { return Interval{A: a} }

func (iv Interval) equal(o Interval) bool {
	if iv.A != o.A {
		return false
	}
	if (iv.B == nil) != (o.B == nil) {
		return false
	}
	return iv.B == nil || *iv.B == *o.B
}

func (iv Interval) String() string {
	if iv.B == nil {
		return fmt.Sprintf("[%d,inf]", iv.A)
	}
	return fmt.Sprintf("[%d,%d]", iv.A, *iv.B)
}

func (iv Interval) hash(h *uint64) {
	*h = *h*1099511628211 ^ uint64(iv.A)
	if iv.B != nil {
		*h = *h*1099511628211 ^ uint64(*iv.B) ^ 1
	}
}

// DefaultInterval returns the grammar's default interval for a unary
// temporal operator: (0,∞) for G/F/O/P, (1,∞) for X. not has no
// interval and DefaultInterval is not meaningful for it.
func DefaultInterval(op UnaryOp) Interval {
	if op == OpX {
		return Unbounded(1)
	}
	return Unbounded(0)
}

// True is the constant formula ⊤.
type True struct{}

func (True) isFormula()        {}
func (True) Kind() Kind        { return KindTrue }
func (True) String() string    { return "True" }
func (True) Hash() uint64      { return fnvHash("True") }
func (True) Equal(o Formula) bool {
	_, ok := o.(True)
	return ok
}

// False is the constant formula ⊥.
type False struct{}

func (False) isFormula()        {}
func (False) Kind() Kind        { return KindFalse }
func (False) String() string    { return "False" }
func (False) Hash() uint64      { return fnvHash("False") }
func (False) Equal(o Formula) bool {
	_, ok := o.(False)
	return ok
}

// AtomicProposition is an uninterpreted named proposition, evaluated
// directly against the evaluation set (it carries no predicate
// arguments and is never looked up in the oracle).
type AtomicProposition struct{ Name string }

func (AtomicProposition) isFormula() {}
func (AtomicProposition) Kind() Kind { return KindAtomicProposition }
func (a AtomicProposition) String() string { return a.Name }
func (a AtomicProposition) Hash() uint64   { return fnvHash("AP:" + a.Name) }
func (a AtomicProposition) Equal(o Formula) bool {
	b, ok := o.(AtomicProposition)
	return ok && a.Name == b.Name
}

// Predicate is a named proposition applied to a list of terms, resolved
// against an oracle.Oracle.
type Predicate struct {
	Name  string
	Terms []Term
}

func (Predicate) isFormula() {}
func (Predicate) Kind() Kind { return KindPredicate }
func (p Predicate) String() string {
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(parts, ","))
}
func (p Predicate) Hash() uint64 {
	h := fnvHash("Pred:" + p.Name)
	for _, t := range p.Terms {
		h = h*1099511628211 ^ fnvHash(t.String())
	}
	return h
}
func (p Predicate) Equal(o Formula) bool {
	q, ok := o.(Predicate)
	if !ok || p.Name != q.Name || len(p.Terms) != len(q.Terms) {
		return false
	}
	for i := range p.Terms {
		if !p.Terms[i].equal(q.Terms[i]) {
			return false
		}
	}
	return true
}

// Unary wraps a single child formula with a temporal/logical operator
// and (for temporal operators) an interval.
type Unary struct {
	Op       UnaryOp
	Interval Interval
	Child    Formula
}

func (Unary) isFormula() {}
func (Unary) Kind() Kind { return KindUnary }
func (u Unary) String() string {
	if u.Op == OpNot {
		return fmt.Sprintf("!(%s)", u.Child.String())
	}
	if u.Interval.equal(DefaultInterval(u.Op)) {
		return fmt.Sprintf("%s(%s)", u.Op.String(), u.Child.String())
	}
	return fmt.Sprintf("%s%s(%s)", u.Op.String(), u.Interval.String(), u.Child.String())
}
func (u Unary) Hash() uint64 {
	h := fnvHash("Unary") * 1099511628211 ^ uint64(u.Op)
	u.Interval.hash(&h)
	return h ^ u.Child.Hash()*31
}
func (u Unary) Equal(o Formula) bool {
	v, ok := o.(Unary)
	return ok && u.Op == v.Op && u.Interval.equal(v.Interval) && u.Child.Equal(v.Child)
}

// Binary wraps two child formulas with a binary operator; Interval is
// only meaningful when Op == OpUntil.
type Binary struct {
	Op       BinaryOp
	Interval Interval
	Left     Formula
	Right    Formula
}

func (Binary) isFormula() {}
func (Binary) Kind() Kind { return KindBinary }
func (b Binary) String() string {
	if b.Op == OpUntil {
		return fmt.Sprintf("(%s U%s %s)", b.Left.String(), b.Interval.String(), b.Right.String())
	}
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.String(), b.Right.String())
}
func (b Binary) Hash() uint64 {
	h := fnvHash("Binary") * 1099511628211 ^ uint64(b.Op)
	if b.Op == OpUntil {
		b.Interval.hash(&h)
	}
	return h ^ b.Left.Hash()*31 ^ b.Right.Hash()*37
}
func (b Binary) Equal(o Formula) bool {
	c, ok := o.(Binary)
	if !ok || b.Op != c.Op || !b.Left.Equal(c.Left) || !b.Right.Equal(c.Right) {
		return false
	}
	if b.Op == OpUntil {
		return b.Interval.equal(c.Interval)
	}
	return true
}

// Multi wraps a non-empty list of children with a variadic operator.
type Multi struct {
	Op       MultiOp
	Children []Formula
}

func (Multi) isFormula() {}
func (Multi) Kind() Kind { return KindMulti }
func (m Multi) String() string {
	parts := make([]string, len(m.Children))
	for i, c := range m.Children {
		parts[i] = c.String()
	}
	sep := " & "
	if m.Op == OpDisjunction {
		sep = " | "
	}
	return "(" + strings.Join(parts, sep) + ")"
}
func (m Multi) Hash() uint64 {
	h := fnvHash("Multi") * 1099511628211 ^ uint64(m.Op)
	for _, c := range m.Children {
		h = h*31 ^ c.Hash()
	}
	return h
}
func (m Multi) Equal(o Formula) bool {
	n, ok := o.(Multi)
	if !ok || m.Op != n.Op || len(m.Children) != len(n.Children) {
		return false
	}
	for i := range m.Children {
		if !m.Children[i].Equal(n.Children[i]) {
			return false
		}
	}
	return true
}

func fnvHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Globally builds G[a,b] child, defaulting to (0,∞) when interval is nil.
func Globally(child Formula, interval *Interval) Formula {
	return unaryWithDefault(OpG, child, interval)
}

// Finally builds F[a,b] child, defaulting to (0,∞).
func Finally(child Formula, interval *Interval) Formula {
	return unaryWithDefault(OpF, child, interval)
}

// Next builds X[a] child, defaulting to (1,∞).
func Next(child Formula, interval *Interval) Formula {
	return unaryWithDefault(OpX, child, interval)
}

// Once builds O[a,b] child, defaulting to (0,∞).
func Once(child Formula, interval *Interval) Formula {
	return unaryWithDefault(OpO, child, interval)
}

// Previously builds P[a,b] child, defaulting to (0,∞).
func Previously(child Formula, interval *Interval) Formula {
	return unaryWithDefault(OpP, child, interval)
}

// Not builds !child.
func Not(child Formula) Formula {
	return Unary{Op: OpNot, Interval: Unbounded(0), Child: child}
}

func unaryWithDefault(op UnaryOp, child Formula, interval *Interval) Formula {
	iv := DefaultInterval(op)
	if interval != nil {
		iv = *interval
	}
	return Unary{Op: op, Interval: iv, Child: child}
}

// And, Or, Imp, Iff build the corresponding Binary formulas.
func And(l, r Formula) Formula  { return Binary{Op: OpAnd, Left: l, Right: r} }
func Or(l, r Formula) Formula   { return Binary{Op: OpOr, Left: l, Right: r} }
func Imp(l, r Formula) Formula  { return Binary{Op: OpImp, Left: l, Right: r} }
func Iff(l, r Formula) Formula  { return Binary{Op: OpIff, Left: l, Right: r} }

// Until builds l U[a,b] r, defaulting the interval to (0,∞).
func Until(l, r Formula, interval *Interval) Formula {
	iv := Unbounded(0)
	if interval != nil {
		iv = *interval
	}
	return Binary{Op: OpUntil, Interval: iv, Left: l, Right: r}
}

// Conjunction and Disjunction build non-empty Multi formulas. They panic
// on an empty children list: an empty n-ary logical operator has no
// well-defined identity element in this AST (the caller must supply
// True{}/False{} explicitly for that case).
func Conjunction(children ...Formula) Formula {
	if len(children) == 0 {
		panic("formula: Conjunction requires at least one child")
	}
	return Multi{Op: OpConjunction, Children: children}
}

func Disjunction(children ...Formula) Formula {
	if len(children) == 0 {
		panic("formula: Disjunction requires at least one child")
	}
	return Multi{Op: OpDisjunction, Children: children}
}
