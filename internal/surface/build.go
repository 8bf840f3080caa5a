// Package surface lowers the grammar package's concrete syntax tree
// into internal/formula's algebraic AST. Because participle resolves
// precedence through the grammar's layering, there is no Pratt-style
// operator-climbing loop here — lowering is a direct structural walk
// that accumulates errors and keeps going instead of stopping at the
// first one, using internal/errors' position-carrying constructors.
package surface

import (
	"strconv"

	"ltlsimplify/grammar"
	"ltlsimplify/internal/builtins"
	"ltlsimplify/internal/errors"
	"ltlsimplify/internal/formula"
)

// builder accumulates errors while lowering a CST, mirroring the
// teacher's Parser.errors field.
type builder struct {
	filename string
	errs     []errors.CompilerError
}

// Build parses source and lowers it to a formula.Formula in one step.
// On a syntax error the grammar package's own caret-style reporter has
// already printed it; Build returns the wrapped error. On a successful
// parse that still fails semantic checks (unknown operator, inverted
// interval, empty multi-operator), Build returns the partial lowering
// alongside the accumulated errors so callers can report all of them at
// once instead of stopping at the first.
func Build(filename, source string) (formula.Formula, []errors.CompilerError, error) {
	cst, err := grammar.ParseString(filename, source)
	if err != nil {
		return nil, nil, err
	}
	b := &builder{filename: filename}
	f := b.formula(cst)
	return f, b.errs, nil
}

func (b *builder) fail(e errors.CompilerError) {
	b.errs = append(b.errs, e)
}

func (b *builder) formula(f *grammar.Formula) formula.Formula {
	return b.iff(f.Iff)
}

func (b *builder) iff(e *grammar.IffExpr) formula.Formula {
	acc := b.imp(e.Left)
	for _, r := range e.Rest {
		acc = formula.Iff(acc, b.imp(r))
	}
	return acc
}

func (b *builder) imp(e *grammar.ImpExpr) formula.Formula {
	acc := b.or(e.Left)
	for _, r := range e.Rest {
		acc = formula.Imp(acc, b.or(r))
	}
	return acc
}

func (b *builder) or(e *grammar.OrExpr) formula.Formula {
	acc := b.and(e.Left)
	for _, r := range e.Rest {
		acc = formula.Or(acc, b.and(r))
	}
	return acc
}

func (b *builder) and(e *grammar.AndExpr) formula.Formula {
	acc := b.until(e.Left)
	for _, r := range e.Rest {
		acc = formula.And(acc, b.until(r))
	}
	return acc
}

func (b *builder) until(e *grammar.UntilExpr) formula.Formula {
	left := b.unary(e.Left)
	if e.Right == nil {
		return left
	}
	right := b.unary(e.Right)
	var iv *formula.Interval
	if e.Interval != nil {
		iv = b.interval(e.Interval)
	}
	return formula.Until(left, right, iv)
}

func (b *builder) unary(e *grammar.UnaryExpr) formula.Formula {
	switch {
	case e.Not != nil:
		return formula.Not(b.unary(e.Not))
	case e.Temporal != nil:
		return b.temporal(e.Temporal)
	default:
		return b.atom(e.Atom)
	}
}

func (b *builder) temporal(t *grammar.TemporalOp) formula.Formula {
	child := b.unary(t.Operand)
	var iv *formula.Interval
	if t.Interval != nil {
		iv = b.interval(t.Interval)
	}
	switch builtins.Operator(normalizeOp(t.Op)) {
	case builtins.OpGlobally:
		return formula.Globally(child, iv)
	case builtins.OpFinally:
		return formula.Finally(child, iv)
	case builtins.OpNext:
		return formula.Next(child, iv)
	case builtins.OpOnce:
		return formula.Once(child, iv)
	case builtins.OpPreviously:
		return formula.Previously(child, iv)
	default:
		b.fail(errors.UnknownOperator(t.Op, errors.Position{}, builtins.Keywords()))
		return formula.False{}
	}
}

// normalizeOp maps the grammar's long-form spellings ("Once",
// "Previously") onto the single-letter builtins.Operator keys.
func normalizeOp(op string) string {
	switch op {
	case "Once":
		return "O"
	case "Previously":
		return "P"
	default:
		return op
	}
}

func (b *builder) interval(iv *grammar.Interval) *formula.Interval {
	if iv.Inf {
		r := formula.Unbounded(iv.Lo)
		return &r
	}
	if iv.Hi != nil && *iv.Hi < iv.Lo {
		b.fail(errors.IntervalBoundsInverted(iv.Lo, *iv.Hi, errors.Position{
			Line: iv.Pos.Line, Column: iv.Pos.Column,
		}))
	}
	if iv.Lo < 0 {
		b.fail(errors.IntervalNegative(iv.Lo, errors.Position{
			Line: iv.Pos.Line, Column: iv.Pos.Column,
		}))
	}
	hi := 0
	if iv.Hi != nil {
		hi = *iv.Hi
	}
	r := formula.Bounded(iv.Lo, hi)
	return &r
}

func (b *builder) atom(a *grammar.Atom) formula.Formula {
	switch {
	case a.True:
		return formula.True{}
	case a.False:
		return formula.False{}
	case a.Multi != nil:
		return b.multi(a.Multi)
	case a.Predicate != nil:
		return b.predicate(a.Predicate)
	default:
		return b.formula(a.Paren)
	}
}

func (b *builder) multi(m *grammar.MultiApply) formula.Formula {
	if len(m.Children) == 0 {
		b.fail(errors.EmptyMultiOperator(m.Op, errors.Position{}))
		return formula.False{}
	}
	children := make([]formula.Formula, len(m.Children))
	for i, c := range m.Children {
		children[i] = b.formula(c)
	}
	if m.Op == "disjunction" {
		return formula.Disjunction(children...)
	}
	return formula.Conjunction(children...)
}

func (b *builder) predicate(p *grammar.Predicate) formula.Formula {
	if len(p.Terms) == 0 {
		return formula.AtomicProposition{Name: p.Name}
	}
	terms := make([]formula.Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = b.term(t)
	}
	return formula.Predicate{Name: p.Name, Terms: terms}
}

func (b *builder) term(t *grammar.Term) formula.Term {
	if t.Ident != nil {
		return formula.Constant{Name: *t.Ident}
	}
	return formula.Constant{Name: strconv.Itoa(*t.Int)}
}
