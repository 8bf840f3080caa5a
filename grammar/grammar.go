// Package grammar defines the concrete syntax of the interval-timed LTL
// surface language as participle struct tags: a formula parses directly
// into this tree, then internal/surface lowers it into internal/formula's
// algebraic AST.
//
// Precedence, loosest to tightest: iff < imp < or < and < until < unary
// (not/temporal) < atom. Every binary level folds a repeated-operand
// slice rather than true left-recursion, the way participle grammars
// always express associativity.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Formula is the root production. Pos is populated automatically by
// participle (any struct field of type lexer.Position named Pos is),
// giving internal/surface a source location for diagnostics without a
// position field on every node.
type Formula struct {
	Pos lexer.Position
	Iff *IffExpr `@@`
}

// IffExpr folds a chain of "iff"-joined Imp operands.
type IffExpr struct {
	Left *ImpExpr   `@@`
	Rest []*ImpExpr `("iff" @@)*`
}

// ImpExpr folds a chain of "imp"-joined Or operands.
type ImpExpr struct {
	Left *OrExpr   `@@`
	Rest []*OrExpr `("imp" @@)*`
}

// OrExpr folds a chain of "or"-joined And operands.
type OrExpr struct {
	Left *AndExpr   `@@`
	Rest []*AndExpr `("or" @@)*`
}

// AndExpr folds a chain of "and"-joined Until operands.
type AndExpr struct {
	Left *UntilExpr   `@@`
	Rest []*UntilExpr `("and" @@)*`
}

// UntilExpr is the one genuinely binary-with-interval production: at
// most one "U[a,b]" per level, matching Until's non-associativity.
type UntilExpr struct {
	Left     *UnaryExpr `@@`
	Interval *Interval  `( "U" @@?`
	Right    *UnaryExpr `  @@ )?`
}

// UnaryExpr is "not", a temporal operator with an optional interval, or
// a bare Atom.
type UnaryExpr struct {
	Not      *UnaryExpr  `(  "not" @@`
	Temporal *TemporalOp `|  @@`
	Atom     *Atom       `|  @@ )`
}

// TemporalOp is a prefix temporal operator applied to its operand, with
// an optional bracketed interval (defaulting per formula.DefaultInterval
// when absent).
type TemporalOp struct {
	Pos      lexer.Position
	Op       string     `@("G" | "F" | "X" | "O" | "P" | "Once" | "Previously")`
	Interval *Interval  `@@?`
	Operand  *UnaryExpr `@@`
}

// Interval is a bracketed "[a,b]" or "[a,inf]" annotation.
type Interval struct {
	Pos lexer.Position
	Lo  int  `"[" @Integer ","`
	Inf bool `( @"inf"`
	Hi  *int `| @Integer ) "]"`
}

// Atom is a leaf of the expression grammar: a boolean constant, a
// variadic multi-operator application, a predicate/proposition, or a
// parenthesized subformula.
type Atom struct {
	True      bool        `(  @"true"`
	False     bool        `|  @"false"`
	Multi     *MultiApply `|  @@`
	Predicate *Predicate  `|  @@`
	Paren     *Formula    `|  "(" @@ ")" )`
}

// MultiApply is "conjunction(f, f, ...)" or "disjunction(f, f, ...)". An
// empty argument list parses (so Build can report EmptyMultiOperator as
// a semantic error rather than a syntax error).
type MultiApply struct {
	Op       string     `@("conjunction" | "disjunction")`
	Children []*Formula `"(" (@@ ("," @@)*)? ")"`
}

// Predicate is a bare atomic proposition ("p") or a named predicate
// applied to a term list ("p(x,v1)").
type Predicate struct {
	Pos   lexer.Position
	Name  string  `@Ident`
	Terms []*Term `("(" (@@ ("," @@)*)? ")")?`
}

// Term is either an identifier (a free variable or a bound constant —
// internal/surface decides which by consulting the oracle registry) or
// an integer literal constant.
type Term struct {
	Ident *string `  @Ident`
	Int   *int    `| @Integer`
}
