package lsp

import (
	"github.com/alecthomas/participle/v2/lexer"

	"ltlsimplify/grammar"
)

// SemanticToken represents a single LSP semantic token entry. Line and
// StartChar are 0-based; TokenType indexes SemanticTokenTypes and
// TokenModifiers is a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(f *grammar.Formula) []SemanticToken {
	if f == nil {
		return nil
	}
	return walkIff(f.Iff)
}

func walkIff(e *grammar.IffExpr) []SemanticToken {
	if e == nil {
		return nil
	}
	tokens := walkImp(e.Left)
	for _, r := range e.Rest {
		tokens = append(tokens, walkImp(r)...)
	}
	return tokens
}

func walkImp(e *grammar.ImpExpr) []SemanticToken {
	if e == nil {
		return nil
	}
	tokens := walkOr(e.Left)
	for _, r := range e.Rest {
		tokens = append(tokens, walkOr(r)...)
	}
	return tokens
}

func walkOr(e *grammar.OrExpr) []SemanticToken {
	if e == nil {
		return nil
	}
	tokens := walkAnd(e.Left)
	for _, r := range e.Rest {
		tokens = append(tokens, walkAnd(r)...)
	}
	return tokens
}

func walkAnd(e *grammar.AndExpr) []SemanticToken {
	if e == nil {
		return nil
	}
	tokens := walkUntil(e.Left)
	for _, r := range e.Rest {
		tokens = append(tokens, walkUntil(r)...)
	}
	return tokens
}

func walkUntil(e *grammar.UntilExpr) []SemanticToken {
	if e == nil {
		return nil
	}
	tokens := walkUnary(e.Left)
	if e.Right != nil {
		tokens = append(tokens, walkUnary(e.Right)...)
	}
	return tokens
}

func walkUnary(e *grammar.UnaryExpr) []SemanticToken {
	if e == nil {
		return nil
	}
	switch {
	case e.Not != nil:
		return walkUnary(e.Not)
	case e.Temporal != nil:
		return walkTemporal(e.Temporal)
	default:
		return walkAtom(e.Atom)
	}
}

func walkTemporal(t *grammar.TemporalOp) []SemanticToken {
	if t == nil {
		return nil
	}
	tokens := []SemanticToken{makeToken(t.Pos, len(t.Op), "keyword", 0)}
	return append(tokens, walkUnary(t.Operand)...)
}

func walkAtom(a *grammar.Atom) []SemanticToken {
	if a == nil {
		return nil
	}
	switch {
	case a.Multi != nil:
		var tokens []SemanticToken
		for _, c := range a.Multi.Children {
			tokens = append(tokens, walkIff(c.Iff)...)
		}
		return tokens
	case a.Predicate != nil:
		return walkPredicate(a.Predicate)
	case a.Paren != nil:
		return walkIff(a.Paren.Iff)
	default:
		return nil
	}
}

func walkPredicate(p *grammar.Predicate) []SemanticToken {
	modifier := 1 // declaration-ish: a bare proposition name
	tokenType := "variable"
	if len(p.Terms) > 0 {
		tokenType = "function"
		modifier = 0
	}
	tokens := []SemanticToken{makeToken(p.Pos, len(p.Name), tokenType, modifier)}
	for _, term := range p.Terms {
		if term.Ident != nil {
			tokens = append(tokens, makeToken(p.Pos, len(*term.Ident), "parameter", 0))
		}
	}
	return tokens
}

func makeToken(pos lexer.Position, length int, tokenType string, decl int) SemanticToken {
	return SemanticToken{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: decl << indexOf("declaration", SemanticTokenModifiers),
	}
}

func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
