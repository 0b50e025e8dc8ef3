package lsp

import (
	cerrors "cmoon/internal/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ConvertError transforms a lexer or parser error on text into LSP
// diagnostics. Lines are shifted to 0-based and byte columns become UTF-16
// offsets.
func ConvertError(text string, err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	diag, ok := cerrors.AsDiagnostic(err)
	if !ok {
		diag = cerrors.NewError("", err.Error(), diag.Position).Build()
	}

	return []protocol.Diagnostic{ConvertCompilerError(text, diag)}
}

// ConvertCompilerError maps one reporter diagnostic on text onto the wire type.
func ConvertCompilerError(text string, diag cerrors.CompilerError) protocol.Diagnostic {
	lines := newSourceLines(text)
	line := uint32(max(0, diag.Position.Line-1))
	start := lines.character(diag.Position.Line, diag.Position.Column)
	end := lines.character(diag.Position.Line, diag.Position.Column+max(1, diag.Length))

	source := "cmoon-parser"
	if cerrors.IsLexical(diag.Code) {
		source = "cmoon-lexer"
	}

	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: end},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   &source,
		Message:  diag.Message,
	}
	if diag.Code != "" {
		d.Code = &protocol.IntegerOrString{Value: diag.Code}
	}
	return d
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
