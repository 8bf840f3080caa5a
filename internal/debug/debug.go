// Package debug provides pretty-printing for the simplifier's internal
// data structures. It is test- and tooling-facing only: nothing in
// internal/simplify or internal/interval imports it, keeping tracing
// out of the simplifier itself.
package debug

import (
	"fmt"
	"strings"

	"ltlsimplify/internal/formula"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/simplmap"
)

// Printer accumulates indented text, the way a formula/map dump threads
// depth while walking a tree.
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter returns an empty Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

// PrintSet renders a Set's membership over [0, horizon], marking the
// point a tail-infinite set becomes contiguous.
func PrintSet(s intset.Set, horizon int) string {
	var b strings.Builder
	b.WriteString(s.String())
	if s.IsInf() {
		b.WriteString(fmt.Sprintf(" (contiguous from %d)", s.MinInfStart()))
	}
	b.WriteString(" @[0,")
	fmt.Fprintf(&b, "%d]: ", horizon)
	first := true
	s.Iterate(horizon, func(n int) bool {
		if !first {
			b.WriteString(",")
		}
		first = false
		fmt.Fprintf(&b, "%d", n)
		return true
	})
	return b.String()
}

// PrintMap renders every entry of a simplification map, one line per
// formula, in the map's insertion order (simplmap.Map.Formulas).
func PrintMap(m *simplmap.Map, horizon int) string {
	p := NewPrinter()
	for _, f := range m.Formulas() {
		j := m.Get(f)
		p.writeLine("%s  ->  %s", f.String(), PrintSet(j, horizon))
	}
	return p.output.String()
}

// Unfold lists every position in [0,horizon] at which f is the
// recorded residual in m. Test-only: it exists to turn a tail-infinite
// simplmap entry into a concrete, assertable slice without the caller
// hand-rolling the same Iterate loop in every test file.
func Unfold(m *simplmap.Map, f formula.Formula, horizon int) []int {
	var out []int
	j := m.Get(f)
	j.Iterate(horizon, func(n int) bool {
		out = append(out, n)
		return true
	})
	return out
}
