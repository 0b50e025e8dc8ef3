package errors

import (
	"fmt"
	"strings"

	"cmoon/token"
)

// ErrorBuilder provides a fluent interface for creating diagnostics with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos token.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string, pos token.Position, length int) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// Lexical error constructors

func UnrecognizedCharacter(lexeme string, pos token.Position) CompilerError {
	return NewError(ErrorUnrecognizedCharacter, fmt.Sprintf("unrecognized character %q", lexeme), pos).
		WithLength(max(1, len(lexeme))).
		WithNote("C-Moon accepts letters, digits, '_', '.', whitespace, comments and ( ) { } ;").
		Build()
}

func UnterminatedComment(pos token.Position) CompilerError {
	return NewError(ErrorUnterminatedComment, "unterminated block comment", pos).
		WithLength(2).
		WithSuggestion("close the comment with '*/'").
		Build()
}

func MalformedNumber(message, lexeme string, pos token.Position) CompilerError {
	return NewError(ErrorMalformedNumber, message, pos).
		WithLength(max(1, len(lexeme))).
		WithHelp("numeric literals are digits with an optional fraction, exponent and 'u'/'l' suffixes, e.g. 42, 3.5e2, 10ul").
		Build()
}

// Syntax error constructors

// ExpectedToken reports a rule expectation that the found token does not meet.
// When the found token is close to the expected keyword a spelling fix is suggested.
func ExpectedToken(message, found string, expected token.Kind, pos token.Position) CompilerError {
	builder := NewError(ErrorExpectedToken, fmt.Sprintf("%s, found '%s'", message, found), pos).
		WithLength(max(1, len(found)))

	if expected.IsKeyword() {
		keyword := expected.String()
		if misspells(found, keyword) {
			builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", keyword), keyword, pos, len(found))
		}
	}

	return builder.WithNote("a program is exactly: int <name>(void) { return <constant>; }").Build()
}

func UnexpectedEndOfInput(message string, pos token.Position) CompilerError {
	return NewError(ErrorUnexpectedEndOfInput, fmt.Sprintf("%s, found end of input", message), pos).
		WithNote("a program is exactly: int <name>(void) { return <constant>; }").
		Build()
}

func TrailingTokens(found string, pos token.Position) CompilerError {
	return NewError(ErrorTrailingTokens, "unexpected tokens after end of program", pos).
		WithLength(max(1, len(found))).
		WithSuggestion(fmt.Sprintf("remove '%s' and everything after it", found)).
		WithNote("only a single function is supported").
		Build()
}

func EngineMismatch(details []string) CompilerError {
	return NewError(ErrorEngineMismatch, "parsing engines disagree", token.Position{Line: 1}).
		WithNote(strings.Join(details, "; ")).
		Build()
}

// misspells reports whether found looks like a typo of keyword: at most two
// edits apart, and longer than one character so punctuation never matches.
func misspells(found, keyword string) bool {
	return len(found) > 1 && found != keyword && editDistance(found, keyword) <= 2
}

// editDistance is the Levenshtein distance between a and b, computed over
// two rolling rows.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}
