package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ltlsimplify/grammar"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/oracle"
	"ltlsimplify/internal/simplify"
	"ltlsimplify/internal/stdlib"
	"ltlsimplify/internal/surface"
)

// Supported semantic token types/modifiers, as required by the LSP spec.
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
}

// Handler implements the LSP server handlers for the LTL surface
// language: hovering a predicate shows its known (I_true, I_false)
// under a fixed example oracle, and parse/semantic errors are reported
// as diagnostics as the client edits.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	asts    map[string]*grammar.Formula
	oracle  oracle.Oracle
}

// NewHandler creates and returns a new Handler instance, backed by
// stdlib.Always as a placeholder oracle — good enough to drive hover
// and diagnostics without a bespoke fixture-loading UI.
func NewHandler() *Handler {
	return &Handler{
		content: make(map[string]string),
		asts:    make(map[string]*grammar.Formula),
		oracle:  oracle.NewCache(stdlib.Always()),
	}
}

func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: ptrBool(true),
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("LTL LSP Initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("LTL LSP Shutdown")
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateFormula(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update formula: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.asts, path)
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateFormula(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update formula: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        []protocol.CompletionItem{},
	}, nil
}

// TextDocumentHover reports the active oracle's known true/false sets
// for the predicate at the cursor, by matching a predicate in the last
// successfully parsed tree whose recorded position covers the requested
// offset.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	f, ok := h.asts[path]
	h.mu.RUnlock()
	if !ok || f == nil {
		return nil, nil
	}

	line, col := int(params.Position.Line)+1, int(params.Position.Character)+1
	pred := findPredicateAt(f, line, col)
	if pred == nil {
		return nil, nil
	}

	terms := make([]string, len(pred.Terms))
	for i, t := range pred.Terms {
		if t.Ident != nil {
			terms[i] = *t.Ident
		}
	}
	trueSet, falseSet, err := h.oracle.Check(pred.Name, terms)
	if err != nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: fmt.Sprintf("%s: true at %s, false at %s", pred.Name, trueSet.String(), falseSet.String()),
		},
	}, nil
}

func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	f := h.asts[path]
	h.mu.RUnlock()

	tokens := collectSemanticTokens(f)

	var data []uint32
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))
		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *Handler) updateFormula(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	cst, parseErr := grammar.ParseString(path, string(content))
	if parseErr != nil {
		return ConvertSyntaxError(parseErr), nil
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.asts[path] = cst
	h.mu.Unlock()

	f, semanticErrs, err := surface.Build(path, string(content))
	if err != nil {
		return ConvertSyntaxError(err), nil
	}
	_ = simplify.Simplify(f, intset.N0(), h.oracle) // validates the formula end-to-end

	return ConvertCompilerErrors(semanticErrs), nil
}

// findPredicateAt walks every predicate reachable from f and returns
// the first one whose source span covers (line, col).
func findPredicateAt(f *grammar.Formula, line, col int) *grammar.Predicate {
	var found *grammar.Predicate
	covers := func(p *grammar.Predicate) bool {
		return p.Pos.Line == line && col >= p.Pos.Column && col <= p.Pos.Column+len(p.Name)
	}

	var visitUnary func(*grammar.UnaryExpr)
	visitFormula := func(fm *grammar.Formula) { visitIff(fm.Iff, visitUnary) }

	visitUnary = func(u *grammar.UnaryExpr) {
		if u == nil || found != nil {
			return
		}
		switch {
		case u.Not != nil:
			visitUnary(u.Not)
		case u.Temporal != nil:
			visitUnary(u.Temporal.Operand)
		case u.Atom != nil:
			a := u.Atom
			switch {
			case a.Predicate != nil:
				if covers(a.Predicate) {
					found = a.Predicate
				}
			case a.Multi != nil:
				for _, c := range a.Multi.Children {
					visitFormula(c)
				}
			case a.Paren != nil:
				visitFormula(a.Paren)
			}
		}
	}

	visitFormula(f)
	return found
}

func visitIff(e *grammar.IffExpr, visit func(*grammar.UnaryExpr)) {
	if e == nil {
		return
	}
	for _, imp := range append([]*grammar.ImpExpr{e.Left}, e.Rest...) {
		visitImp(imp, visit)
	}
}

func visitImp(e *grammar.ImpExpr, visit func(*grammar.UnaryExpr)) {
	if e == nil {
		return
	}
	for _, or := range append([]*grammar.OrExpr{e.Left}, e.Rest...) {
		visitOr(or, visit)
	}
}

func visitOr(e *grammar.OrExpr, visit func(*grammar.UnaryExpr)) {
	if e == nil {
		return
	}
	for _, and := range append([]*grammar.AndExpr{e.Left}, e.Rest...) {
		visitAnd(and, visit)
	}
}

func visitAnd(e *grammar.AndExpr, visit func(*grammar.UnaryExpr)) {
	if e == nil {
		return
	}
	for _, u := range append([]*grammar.UntilExpr{e.Left}, e.Rest...) {
		visit(u.Left)
		if u.Right != nil {
			visit(u.Right)
		}
	}
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Printf("Sending %d diagnostics for %s\n", len(diagnostics), uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
