package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ltlsimplify/internal/lsp"
)

func writeFixture(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "formula.ltl")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func openDocument(t *testing.T, handler *lsp.Handler, path string) {
	t.Helper()
	uri := "file://" + filepath.ToSlash(path)
	err := handler.TextDocumentDidOpen(&glsp.Context{}, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri},
	})
	require.NoError(t, err, "TextDocumentDidOpen returned error")
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	path := writeFixture(t, "G[0,3] OnRamp(v1) and Once[0,2] ready")
	handler := lsp.NewHandler()
	openDocument(t, handler, path)

	uri := "file://" + filepath.ToSlash(path)
	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.NotEmpty(t, decoded, "No semantic tokens decoded")

	tokenTypes := make(map[string]int)
	for _, token := range decoded {
		tokenTypes[token.Type]++
	}

	require.Greater(t, tokenTypes["keyword"], 0, "Should have keyword tokens for temporal operators")
	require.Greater(t, tokenTypes["function"], 0, "Should have function tokens for applied predicates")
	require.Greater(t, tokenTypes["variable"], 0, "Should have variable tokens for bare propositions")

	t.Logf("Generated %d semantic tokens with types: %v", len(decoded), tokenTypes)
}

func TestTextDocumentHoverReportsOracleKnowledge(t *testing.T) {
	path := writeFixture(t, "ready")
	handler := lsp.NewHandler()
	openDocument(t, handler, path)

	uri := "file://" + filepath.ToSlash(path)
	hover, err := handler.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 1},
		},
	})
	require.NoError(t, err, "TextDocumentHover returned error")
	require.NotNil(t, hover, "Expected a hover result over the 'ready' proposition")

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok, "Expected MarkupContent hover contents")
	require.Contains(t, content.Value, "ready")
}

func TestTextDocumentHoverMissesOutsidePredicate(t *testing.T) {
	path := writeFixture(t, "ready")
	handler := lsp.NewHandler()
	openDocument(t, handler, path)

	uri := "file://" + filepath.ToSlash(path)
	hover, err := handler.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 5, Character: 0},
		},
	})
	require.NoError(t, err, "TextDocumentHover returned error")
	require.Nil(t, hover, "Expected no hover result far outside the document")
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}
