package parser

import (
	"fmt"

	cerrors "cmoon/internal/errors"
	"cmoon/token"
)

const MsgTrailingTokens = "unexpected tokens after end of program"

const (
	codeExpectedToken        = cerrors.ErrorExpectedToken
	codeTrailingTokens       = cerrors.ErrorTrailingTokens
	codeUnexpectedEndOfInput = cerrors.ErrorUnexpectedEndOfInput
)

// ParseError describes the first grammar expectation a parse could not meet.
type ParseError struct {
	Message  string
	Lexeme   string // token found instead; empty when AtEnd
	AtEnd    bool   // input ran out before the expectation
	Position token.Position
	Expected token.Kind // ERROR when no single kind applies
	Code     string
}

func (e *ParseError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("%s at end of input", e.Message)
	}
	return fmt.Sprintf("%s at token '%s'", e.Message, e.Lexeme)
}

// Diagnostic converts the error for the reporter and the language server.
func (e *ParseError) Diagnostic() cerrors.CompilerError {
	switch {
	case e.Code == codeTrailingTokens:
		return cerrors.TrailingTokens(e.Lexeme, e.Position)
	case e.AtEnd:
		return cerrors.UnexpectedEndOfInput(e.Message, e.Position)
	default:
		return cerrors.ExpectedToken(e.Message, e.Lexeme, e.Expected, e.Position)
	}
}
