package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ltlsimplify/internal/errors"
)

// ConvertCompilerErrors transforms surface.Build's accumulated semantic
// errors (malformed intervals, unknown operators, empty multi-operator
// applications) into LSP diagnostics for IDE display.
func ConvertCompilerErrors(errs []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, e := range errs {
		length := e.Length
		if length <= 0 {
			length = 1
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(max0(e.Position.Line - 1)),
					Character: uint32(max0(e.Position.Column - 1)),
				},
				End: protocol.Position{
					Line:      uint32(max0(e.Position.Line - 1)),
					Character: uint32(max0(e.Position.Column-1) + length),
				},
			},
			Severity: ptrSeverity(severityFor(e.Level)),
			Source:   ptrString("ltl-surface"),
			Message:  e.Message,
		})
	}

	return diagnostics
}

// ConvertSyntaxError turns a grammar.ParseString failure into a single
// diagnostic. The grammar package's own reporter already printed the
// caret diagnostic to stderr for CLI use; this is the LSP-facing form.
func ConvertSyntaxError(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("ltl-surface"),
		Message:  err.Error(),
	}}
}

func severityFor(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
