package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"int", INT},
		{"void", VOID},
		{"return", RETURN},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"main", IDENTIFIER},
		{"Int", IDENTIFIER},
		{"returns", IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.ident))
		})
	}
}

func TestKeywordsSorted(t *testing.T) {
	assert.Equal(t, []string{"else", "if", "int", "return", "void", "while"}, Keywords())
	for _, kw := range Keywords() {
		assert.True(t, Lookup(kw).IsKeyword(), kw)
	}
	assert.False(t, IDENTIFIER.IsKeyword())
	assert.False(t, SEMICOLON.IsKeyword())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "Token lexeme: 'main' Token type: identifier", New("main", IDENTIFIER).String())
	assert.Equal(t, "Token lexeme: ';' Token type: ;", New(";", SEMICOLON).String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestTokenEquality(t *testing.T) {
	a := Token{Kind: CONSTANT, Lexeme: "42", Position: Position{Line: 1, Column: 4}}
	b := Token{Kind: CONSTANT, Lexeme: "42", Position: Position{Line: 2, Column: 0}}

	assert.True(t, a.SameAs(b))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.SameAs(New("42", IDENTIFIER)))
}

func TestClassifyLiteral(t *testing.T) {
	assert.Equal(t, INT_VAR, ClassifyLiteral(false, false, false))
	assert.Equal(t, UNSIGNED_INT_VAR, ClassifyLiteral(false, true, false))
	assert.Equal(t, LONG_VAR, ClassifyLiteral(false, false, true))
	assert.Equal(t, UNSIGNED_LONG_VAR, ClassifyLiteral(false, true, true))
	assert.Equal(t, DOUBLE_VAR, ClassifyLiteral(true, true, true))
	assert.Equal(t, "unsigned long", UNSIGNED_LONG_VAR.String())
}
