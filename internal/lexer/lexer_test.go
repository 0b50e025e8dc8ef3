package lexer

import (
	"testing"

	"cmoon/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeProgram(t *testing.T) {
	source := "//some function \nint  main(void)\n {\n return 0;  \n}"

	expected := []token.Token{
		token.New("int", token.INT),
		token.New("main", token.IDENTIFIER),
		token.New("(", token.LEFT_PAREN),
		token.New("void", token.VOID),
		token.New(")", token.RIGHT_PAREN),
		token.New("{", token.LEFT_BRACE),
		token.New("return", token.RETURN),
		token.New("0", token.CONSTANT),
		token.New(";", token.SEMICOLON),
		token.New("}", token.RIGHT_BRACE),
	}

	tokens, err := Tokenize(source)
	require.NoError(t, err)
	require.Len(t, tokens, len(expected))

	for i := range expected {
		assert.True(t, expected[i].SameAs(tokens[i]), "token %d: want %s, got %s", i, expected[i], tokens[i])
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("int main(void)\n{ return 42; }")
	require.NoError(t, err)
	require.Len(t, tokens, 10)

	assert.Equal(t, token.Position{Line: 1, Column: 0}, tokens[0].Position)
	assert.Equal(t, token.Position{Line: 1, Column: 4}, tokens[1].Position)
	assert.Equal(t, token.Position{Line: 1, Column: 8}, tokens[2].Position)
	assert.Equal(t, token.Position{Line: 2, Column: 0}, tokens[5].Position)
	assert.Equal(t, token.Position{Line: 2, Column: 9}, tokens[7].Position)
}

func TestLineBreaks(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"lf", "int\nmain"},
		{"cr", "int\rmain"},
		{"crlf", "int\r\nmain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, token.Position{Line: 2, Column: 0}, tokens[1].Position)
		})
	}
}

func TestComments(t *testing.T) {
	tokens, err := Tokenize("/* header\n spans lines */ int // trailing\r\nmain /**/ ;")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, token.INT, tokens[0].Kind)
	assert.Equal(t, token.Position{Line: 2, Column: 16}, tokens[0].Position)
	assert.Equal(t, token.IDENTIFIER, tokens[1].Kind)
	assert.Equal(t, token.Position{Line: 3, Column: 0}, tokens[1].Position)
	assert.Equal(t, token.SEMICOLON, tokens[2].Kind)
}

func TestUnterminatedBlockComment(t *testing.T) {
	tokens, err := Tokenize("int main /* never closed")
	assert.Nil(t, tokens)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, MsgUnterminatedComment, lexErr.Message)
	assert.Equal(t, token.Position{Line: 1, Column: 9}, lexErr.Position)
}

func TestUnrecognizedCharacter(t *testing.T) {
	tokens, err := Tokenize("int main(void) #")
	assert.Nil(t, tokens, "no partial token list on failure")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, MsgUnrecognizedCharacter, lexErr.Message)
	assert.Equal(t, "#", lexErr.Lexeme)
	assert.Equal(t, token.Position{Line: 1, Column: 15}, lexErr.Position)
	assert.Equal(t, `line 1, column 15: unrecognized character "#"`, lexErr.Error())
}

func TestUnrecognizedMultiByteCharacter(t *testing.T) {
	_, err := Tokenize("int µ")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "µ", lexErr.Lexeme)
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   token.VarKind
	}{
		{"0", token.INT_VAR},
		{"42", token.INT_VAR},
		{"10u", token.UNSIGNED_INT_VAR},
		{"10U", token.UNSIGNED_INT_VAR},
		{"10l", token.LONG_VAR},
		{"10ul", token.UNSIGNED_LONG_VAR},
		{"10LU", token.UNSIGNED_LONG_VAR},
		{"1.5", token.DOUBLE_VAR},
		{"5.", token.DOUBLE_VAR},
		{".5", token.DOUBLE_VAR},
		{"1e10", token.DOUBLE_VAR},
		{"2.5E-3", token.DOUBLE_VAR},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, token.CONSTANT, tokens[0].Kind)
			assert.Equal(t, tt.source, tokens[0].Lexeme)
			assert.Equal(t, tt.want, tokens[0].LiteralType)
		})
	}
}

func TestMalformedNumbers(t *testing.T) {
	tests := []struct {
		source string
		reason string
	}{
		{".", "expected digit after '.'"},
		{"1.2.3", "unexpected second '.'"},
		{"1._5", "digit sequence cannot start with '_'"},
		{"1e", "exponent has no digits"},
		{"1e+", "exponent has no digits"},
		{"1e_3", "digit sequence cannot start with '_'"},
		{"10uu", "duplicate 'u' suffix"},
		{"10ll", "duplicate 'l' suffix"},
		{"42abc", "invalid suffix 'a'"},
		{"1_000", "invalid suffix '_'"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			assert.Nil(t, tokens)

			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.True(t, lexErr.IsMalformedNumber())
			assert.Equal(t, MsgMalformedNumber+": "+tt.reason, lexErr.Message)
			assert.Equal(t, token.Position{Line: 1, Column: 0}, lexErr.Position)
		})
	}
}

func TestStartIsRepeatable(t *testing.T) {
	l := New("int main")

	first, err := l.Start()
	require.NoError(t, err)
	second, err := l.Start()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmptySource(t *testing.T) {
	tokens, err := Tokenize("  \n\t// nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestDiagnostic(t *testing.T) {
	_, err := Tokenize("int #")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)

	diag := lexErr.Diagnostic()
	assert.Equal(t, codeUnrecognizedCharacter, diag.Code)
	assert.Equal(t, token.Position{Line: 1, Column: 4}, diag.Position)
}
