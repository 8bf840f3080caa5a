package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LTLLexer tokenizes the surface syntax. Keywords (true/false/not/and/
// or/imp/iff/U/G/F/X/O/P/Once/Previously/inf/conjunction/disjunction)
// are plain Ident tokens matched by literal value in the grammar tags
// rather than given their own lexer rules.
var LTLLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Punctuation", `[\[\](),]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
