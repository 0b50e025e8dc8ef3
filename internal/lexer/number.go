package lexer

import (
	"fmt"

	"cmoon/token"
)

// scanNumber reads a numeric literal:
//
//	[digits] ["." [digits]] [("e"|"E") ["+"|"-"] digits] {"u"|"U"|"l"|"L"}
//
// At least one digit must appear before the exponent, each suffix letter may
// appear once, and nothing alphanumeric may follow.
func (l *Lexer) scanNumber() (token.Token, error) {
	fractional := false
	integral := l.digits()

	if l.peek() == '.' {
		l.advance()
		fractional = true

		if l.peek() == '_' {
			return l.malformed("digit sequence cannot start with '_'")
		}
		if l.digits() == 0 && integral == 0 {
			return l.malformed("expected digit after '.'")
		}
		if l.peek() == '.' {
			l.advance()
			return l.malformed("unexpected second '.'")
		}
	}

	if c := l.peek(); c == 'e' || c == 'E' {
		l.advance()
		if c := l.peek(); c == '+' || c == '-' {
			l.advance()
		}
		if l.peek() == '_' {
			return l.malformed("digit sequence cannot start with '_'")
		}
		if l.digits() == 0 {
			return l.malformed("exponent has no digits")
		}
		fractional = true
	}

	unsigned, long := false, false
suffix:
	for {
		switch l.peek() {
		case 'u', 'U':
			l.advance()
			if unsigned {
				return l.malformed("duplicate 'u' suffix")
			}
			unsigned = true
		case 'l', 'L':
			l.advance()
			if long {
				return l.malformed("duplicate 'l' suffix")
			}
			long = true
		default:
			break suffix
		}
	}

	if c := l.peek(); isAlpha(c) || isDigit(c) || c == '.' {
		l.advance()
		return l.malformed(fmt.Sprintf("invalid suffix %q", c))
	}

	tok := l.makeToken(token.CONSTANT)
	tok.LiteralType = token.ClassifyLiteral(fractional, unsigned, long)
	return tok, nil
}

// digits consumes a run of decimal digits and returns its length.
func (l *Lexer) digits() int {
	n := 0
	for isDigit(l.peek()) {
		l.advance()
		n++
	}
	return n
}

func (l *Lexer) malformed(reason string) (token.Token, error) {
	return token.Token{}, l.errorHere(MsgMalformedNumber+": "+reason, codeMalformedNumber)
}
