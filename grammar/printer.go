package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

func (f *Formula) String() string {
	return f.Iff.String()
}

func (e *IffExpr) String() string {
	return foldBinary(e.Left.String(), e.Rest, "iff")
}

func (e *ImpExpr) String() string {
	return foldBinary(e.Left.String(), e.Rest, "imp")
}

func (e *OrExpr) String() string {
	return foldBinary(e.Left.String(), e.Rest, "or")
}

func (e *AndExpr) String() string {
	return foldBinary(e.Left.String(), e.Rest, "and")
}

func (e *UntilExpr) String() string {
	if e.Right == nil {
		return e.Left.String()
	}
	if e.Interval != nil {
		return fmt.Sprintf("%s U%s %s", e.Left.String(), e.Interval.String(), e.Right.String())
	}
	return fmt.Sprintf("%s U %s", e.Left.String(), e.Right.String())
}

func (u *UnaryExpr) String() string {
	switch {
	case u.Not != nil:
		return "not " + u.Not.String()
	case u.Temporal != nil:
		return u.Temporal.String()
	default:
		return u.Atom.String()
	}
}

func (t *TemporalOp) String() string {
	if t.Interval != nil {
		return fmt.Sprintf("%s%s %s", t.Op, t.Interval.String(), t.Operand.String())
	}
	return fmt.Sprintf("%s %s", t.Op, t.Operand.String())
}

func (iv *Interval) String() string {
	if iv.Inf {
		return fmt.Sprintf("[%d,inf]", iv.Lo)
	}
	return fmt.Sprintf("[%d,%d]", iv.Lo, *iv.Hi)
}

func (a *Atom) String() string {
	switch {
	case a.True:
		return "true"
	case a.False:
		return "false"
	case a.Multi != nil:
		return a.Multi.String()
	case a.Predicate != nil:
		return a.Predicate.String()
	default:
		return "(" + a.Paren.String() + ")"
	}
}

func (m *MultiApply) String() string {
	parts := make([]string, len(m.Children))
	for i, c := range m.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s(%s)", m.Op, strings.Join(parts, ", "))
}

func (p *Predicate) String() string {
	if len(p.Terms) == 0 {
		return p.Name
	}
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(parts, ","))
}

func (t *Term) String() string {
	if t.Ident != nil {
		return *t.Ident
	}
	return strconv.Itoa(*t.Int)
}

func foldBinary[T fmt.Stringer](left string, rest []T, op string) string {
	if len(rest) == 0 {
		return left
	}
	var b strings.Builder
	b.WriteString(left)
	for _, r := range rest {
		b.WriteString(" " + op + " ")
		b.WriteString(r.String())
	}
	return b.String()
}

