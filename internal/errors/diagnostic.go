package errors

import stderrors "errors"

// Diagnosable is implemented by the lexer and parser error values.
type Diagnosable interface {
	error
	Diagnostic() CompilerError
}

// AsDiagnostic unwraps err until it finds a Diagnosable and converts it.
func AsDiagnostic(err error) (CompilerError, bool) {
	var d Diagnosable
	if stderrors.As(err, &d) {
		return d.Diagnostic(), true
	}
	return CompilerError{}, false
}
