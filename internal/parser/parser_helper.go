package parser

import (
	"errors"

	"cmoon/token"
)

// errEndOfInput is raised by currentToken and never leaves the package; Parse
// turns it into a *ParseError.
var errEndOfInput = errors.New("unexpected end of input")

// currentToken returns the token under the cursor. Past the last token, or on
// an EOF token, there is no token available.
func (p *Parser) currentToken() (token.Token, error) {
	if p.current >= len(p.tokens) || p.tokens[p.current].Kind == token.EOF {
		return token.Token{}, errEndOfInput
	}
	return p.tokens[p.current], nil
}

func (p *Parser) advance() {
	if p.current < len(p.tokens) {
		p.current++
	}
}

// match consumes and returns the current token when it has the given kind.
// On a mismatch the cursor does not move.
func (p *Parser) match(kind token.Kind) (token.Token, bool) {
	tok, err := p.currentToken()
	if err != nil || tok.Kind != kind {
		return token.Token{}, false
	}
	p.advance()
	return tok, true
}

func (p *Parser) expect(kind token.Kind, message string) error {
	_, err := p.expectAndReturn(kind, message)
	return err
}

// expectAndReturn is expect that also hands back the matched token, whose
// lexeme becomes the value of an AST node.
func (p *Parser) expectAndReturn(kind token.Kind, message string) (token.Token, error) {
	if tok, ok := p.match(kind); ok {
		return tok, nil
	}
	return token.Token{}, p.errorAtCurrent(message, kind)
}

func (p *Parser) errorAtCurrent(message string, expected token.Kind) *ParseError {
	tok, err := p.currentToken()
	if errors.Is(err, errEndOfInput) {
		return &ParseError{
			Message:  message,
			AtEnd:    true,
			Position: p.endPosition(),
			Expected: expected,
			Code:     codeUnexpectedEndOfInput,
		}
	}

	return &ParseError{
		Message:  message,
		Lexeme:   tok.Lexeme,
		Position: tok.Position,
		Expected: expected,
		Code:     codeExpectedToken,
	}
}

func (p *Parser) errorTrailing() *ParseError {
	tok := p.tokens[p.current]
	return &ParseError{
		Message:  MsgTrailingTokens,
		Lexeme:   tok.Lexeme,
		Position: tok.Position,
		Expected: token.EOF,
		Code:     codeTrailingTokens,
	}
}

func (p *Parser) startPosition() token.Position {
	if len(p.tokens) == 0 {
		return token.Position{Line: 1}
	}
	return p.tokens[0].Position
}

// endPosition is just past the last real token.
func (p *Parser) endPosition() token.Position {
	for i := len(p.tokens) - 1; i >= 0; i-- {
		if tok := p.tokens[i]; tok.Kind != token.EOF {
			return token.Position{Line: tok.Position.Line, Column: tok.Position.Column + len(tok.Lexeme)}
		}
	}
	return token.Position{Line: 1}
}
