package lexer

import (
	"unicode/utf8"

	"cmoon/token"
	"github.com/tliron/commonlog"
)

var logger = commonlog.GetLogger("cmoon.lexer")

// Lexer turns C-Moon source text into tokens. A Lexer is owned by a single
// caller; Start may be called again and rescans from the beginning.
type Lexer struct {
	source   string
	tokens   []token.Token
	start    int
	current  int
	line     int
	column   int
	startPos token.Position
}

func New(source string) *Lexer {
	return &Lexer{source: source, line: 1}
}

// Tokenize is shorthand for New(source).Start().
func Tokenize(source string) ([]token.Token, error) {
	return New(source).Start()
}

// Start scans the whole source. It returns either every token or the first
// lexical error, never both.
func (l *Lexer) Start() ([]token.Token, error) {
	l.reset()

	for {
		if errTok, ok := l.skipWhitespace(); ok {
			logger.Debugf("unterminated block comment at %s", errTok.Position)
			return nil, &LexError{
				Message:  MsgUnterminatedComment,
				Lexeme:   errTok.Lexeme,
				Position: errTok.Position,
				Code:     codeUnterminatedComment,
			}
		}
		if l.isAtEnd() {
			break
		}

		l.start = l.current
		l.startPos = l.position()

		tok, err := l.nextToken()
		if err != nil {
			logger.Debugf("lexing stopped at %s: %s", l.startPos, err)
			return nil, err
		}
		l.tokens = append(l.tokens, tok)
	}

	logger.Debugf("scanned %d tokens", len(l.tokens))
	return l.tokens, nil
}

func (l *Lexer) reset() {
	l.tokens = nil
	l.start = 0
	l.current = 0
	l.line = 1
	l.column = 0
}

func (l *Lexer) nextToken() (token.Token, error) {
	c := l.peek()

	switch c {
	case ';':
		return l.single(token.SEMICOLON), nil
	case '(':
		return l.single(token.LEFT_PAREN), nil
	case ')':
		return l.single(token.RIGHT_PAREN), nil
	case '{':
		return l.single(token.LEFT_BRACE), nil
	case '}':
		return l.single(token.RIGHT_BRACE), nil
	}

	switch {
	case isDigit(c) || c == '.':
		return l.scanNumber()
	case isAlpha(c):
		return l.scanIdentifier(), nil
	}

	// Take the whole rune so the error names the character the user typed.
	_, size := utf8.DecodeRuneInString(l.source[l.current:])
	for i := 0; i < size; i++ {
		l.advance()
	}
	return token.Token{}, l.errorHere(MsgUnrecognizedCharacter, codeUnrecognizedCharacter)
}

func (l *Lexer) single(kind token.Kind) token.Token {
	l.advance()
	return l.makeToken(kind)
}

func (l *Lexer) makeToken(kind token.Kind) token.Token {
	return token.Token{
		Kind:     kind,
		Lexeme:   l.source[l.start:l.current],
		Position: l.startPos,
	}
}

func (l *Lexer) scanIdentifier() token.Token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	return l.makeToken(token.Lookup(l.source[l.start:l.current]))
}

// skipWhitespace consumes blanks, line breaks and both comment forms. It
// returns an ERROR token when the input ends inside a block comment.
func (l *Lexer) skipWhitespace() (token.Token, bool) {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()

		case '/':
			switch l.peekNext() {
			case '/':
				for !l.isAtEnd() && l.peek() != '\n' && l.peek() != '\r' {
					l.advance()
				}
			case '*':
				if tok, unterminated := l.skipBlockComment(); unterminated {
					return tok, true
				}
			default:
				return token.Token{}, false
			}

		default:
			return token.Token{}, false
		}
	}
	return token.Token{}, false
}

func (l *Lexer) skipBlockComment() (token.Token, bool) {
	open := l.position()
	l.advance() // /
	l.advance() // *

	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return token.Token{}, false
		}
		l.advance()
	}

	return token.Token{Kind: token.ERROR, Lexeme: "/*", Position: open}, true
}

// advance consumes one byte. "\n", "\r" and "\r\n" each end one line.
func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++

	switch {
	case c == '\n', c == '\r' && l.peek() != '\n':
		l.line++
		l.column = 0
	default:
		l.column++
	}
	return c
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

func (l *Lexer) errorHere(message, code string) *LexError {
	return &LexError{
		Message:  message,
		Lexeme:   l.source[l.start:l.current],
		Position: l.startPos,
		Code:     code,
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}
