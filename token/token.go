// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"
	"sort"
)

// Kind is the closed category a token belongs to.
type Kind int

const (
	ERROR Kind = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	CONSTANT

	// Keywords
	INT
	VOID
	RETURN
	IF
	ELSE
	WHILE

	// Delimiters
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	SEMICOLON
)

var kindNames = [...]string{
	ERROR:       "error",
	EOF:         "eof",
	IDENTIFIER:  "identifier",
	CONSTANT:    "constant",
	INT:         "int",
	VOID:        "void",
	RETURN:      "return",
	IF:          "if",
	ELSE:        "else",
	WHILE:       "while",
	LEFT_PAREN:  "(",
	RIGHT_PAREN: ")",
	LEFT_BRACE:  "{",
	RIGHT_BRACE: "}",
	SEMICOLON:   ";",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= INT && k <= WHILE
}

// VarKind records how a numeric literal is typed. NONE marks tokens that are
// not numeric literals.
type VarKind int

const (
	NONE VarKind = iota
	INT_VAR
	UNSIGNED_INT_VAR
	LONG_VAR
	UNSIGNED_LONG_VAR
	DOUBLE_VAR
)

var varKindNames = [...]string{
	NONE:              "none",
	INT_VAR:           "int",
	UNSIGNED_INT_VAR:  "unsigned int",
	LONG_VAR:          "long",
	UNSIGNED_LONG_VAR: "unsigned long",
	DOUBLE_VAR:        "double",
}

func (v VarKind) String() string {
	if v >= 0 && int(v) < len(varKindNames) {
		return varKindNames[v]
	}
	return fmt.Sprintf("VarKind(%d)", int(v))
}

func (v VarKind) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ClassifyLiteral maps the flags gathered while scanning a numeric literal to
// its type. A fractional part or exponent always gives a double.
func ClassifyLiteral(fractional, unsigned, long bool) VarKind {
	switch {
	case fractional:
		return DOUBLE_VAR
	case unsigned && long:
		return UNSIGNED_LONG_VAR
	case unsigned:
		return UNSIGNED_INT_VAR
	case long:
		return LONG_VAR
	default:
		return INT_VAR
	}
}

// Position is where a token began. Line is 1-based, Column is 0-based.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind        Kind     `json:"kind" yaml:"kind"`
	Lexeme      string   `json:"lexeme" yaml:"lexeme"`
	Position    Position `json:"position" yaml:"position"`
	LiteralType VarKind  `json:"literal_type,omitempty" yaml:"literal_type,omitempty"`
}

// New builds a token at the zero position, mostly for hand-written token
// streams.
func New(lexeme string, kind Kind) Token {
	return Token{Kind: kind, Lexeme: lexeme}
}

// Equal compares lexeme, kind and position.
func (t Token) Equal(other Token) bool {
	return t.SameAs(other) && t.Position == other.Position
}

// SameAs compares lexeme and kind only.
func (t Token) SameAs(other Token) bool {
	return t.Lexeme == other.Lexeme && t.Kind == other.Kind
}

func (t Token) String() string {
	return fmt.Sprintf("Token lexeme: '%s' Token type: %s", t.Lexeme, t.Kind)
}

var keywords = map[string]Kind{
	"int":    INT,
	"void":   VOID,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
}

// Lookup returns the keyword kind for ident, or IDENTIFIER.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENTIFIER
}

// Keywords lists the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
