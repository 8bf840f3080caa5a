//go:build editor
// +build editor

package grammar

// AST is an error-tolerant variant of Formula, compiled only with the
// editor build tag: it accepts a run of unrecognized tokens as an
// ErrorNode instead of failing the whole parse. No parser in this tree
// is built for it; cmd/ltl-lsp parses documents as a plain Formula.
type AST struct {
	Iff   *IffExpr   `  @@`
	Error *ErrorNode `| @@`
}

// ErrorNode swallows tokens the grammar couldn't place, recording them
// for diagnostic reporting rather than aborting the parse.
type ErrorNode struct {
	Unexpected []string `(@(Ident | Integer | "," | "(" | ")" | "[" | "]")) +`
}
