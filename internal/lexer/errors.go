package lexer

import (
	"fmt"

	cerrors "cmoon/internal/errors"
	"cmoon/token"
)

const (
	MsgUnrecognizedCharacter = "unrecognized character"
	MsgUnterminatedComment   = "unterminated block comment"
	MsgMalformedNumber       = "malformed numeric literal"
)

const (
	codeUnrecognizedCharacter = cerrors.ErrorUnrecognizedCharacter
	codeUnterminatedComment   = cerrors.ErrorUnterminatedComment
	codeMalformedNumber       = cerrors.ErrorMalformedNumber
)

// LexError is the one error a failed Start returns.
type LexError struct {
	Message  string
	Lexeme   string // source text the failing rule consumed
	Position token.Position
	Code     string
}

func (e *LexError) Error() string {
	msg := fmt.Sprintf("line %d, column %d: %s", e.Position.Line, e.Position.Column, e.Message)
	if e.Code == codeUnrecognizedCharacter {
		msg += fmt.Sprintf(" %q", e.Lexeme)
	}
	return msg
}

// Diagnostic converts the error for the reporter and the language server.
func (e *LexError) Diagnostic() cerrors.CompilerError {
	switch e.Code {
	case codeUnterminatedComment:
		return cerrors.UnterminatedComment(e.Position)
	case codeMalformedNumber:
		return cerrors.MalformedNumber(e.Message, e.Lexeme, e.Position)
	default:
		return cerrors.UnrecognizedCharacter(e.Lexeme, e.Position)
	}
}

// IsMalformedNumber reports whether the error came from numeric literal scanning.
func (e *LexError) IsMalformedNumber() bool {
	return e.Code == codeMalformedNumber
}
