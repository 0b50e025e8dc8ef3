package grammar_test

import (
	"os"
	"path/filepath"
	"testing"

	"cmoon/grammar"
	"cmoon/internal/ast"
	cerrors "cmoon/internal/errors"
	"cmoon/internal/parser"
	"cmoon/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	program, err := grammar.ParseString("main.c", "int main(void) {\n    return 42;\n}\n")
	require.NoError(t, err)
	require.NotNil(t, program.Function)

	assert.Equal(t, "int", program.Function.ReturnType)
	assert.Equal(t, "main", program.Function.Name)
	assert.Equal(t, "void", program.Function.Params)
	assert.Equal(t, "42", program.Function.Body.Return.Constant)
}

func TestNodeConversion(t *testing.T) {
	program, err := grammar.ParseString("main.c", "int answer(void) { return 2.5e1; }")
	require.NoError(t, err)

	root := program.Node()
	require.NotNil(t, root)
	assert.Equal(t, []ast.NodeType{ast.PROGRAM, ast.FUNCTION, ast.RETURN, ast.CONSTANT}, root.Types())
	assert.Equal(t, "answer", root.Next.Value)

	constant := root.Find(ast.CONSTANT)
	assert.Equal(t, "2.5e1", constant.Value)
	assert.Equal(t, token.DOUBLE_VAR, constant.LiteralType)
	assert.Equal(t, token.Position{Line: 1, Column: 26}, constant.Pos)
}

func TestEnginesAgree(t *testing.T) {
	sources := []string{
		"int main(void) { return 0; }",
		"//some function \nint  main(void)\n {\n return 0;  \n}",
		"/* header */ int f(void) { return 10ul; }",
		"int g(void)\r\n{\r\n\treturn .5;\r\n}\r\n",
		"int h(void) { return 7LU; }",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			_, handRoot, err := parser.ParseSource(source)
			require.NoError(t, err)

			program, err := grammar.ParseString("test.c", source)
			require.NoError(t, err)

			assert.True(t, ast.Equal(handRoot, program.Node()), "hand:\n%s\ngrammar:\n%s", handRoot.Dump(), program.Node().Dump())
		})
	}
}

func TestEnginesRejectTogether(t *testing.T) {
	sources := []string{
		"main(void) { return 42; }",
		"int main void) { return 42; }",
		"int main(void) { return 42 }",
		"int main(void) { return ; }",
		"int main(void) { return 42; } int",
		"int main(void) { return 42; ",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			_, _, handErr := parser.ParseSource(source)
			assert.Error(t, handErr)

			_, grammarErr := grammar.ParseString("test.c", source)
			assert.Error(t, grammarErr)
		})
	}
}

func TestDiagnostic(t *testing.T) {
	_, err := grammar.ParseString("test.c", "int main(void) { return 42 }")
	require.Error(t, err)

	diag := grammar.Diagnostic(err)
	assert.Equal(t, cerrors.ErrorExpectedToken, diag.Code)
	assert.Equal(t, 1, diag.Position.Line)
	assert.NotEmpty(t, diag.Message)
}

func TestLexicalDiagnostic(t *testing.T) {
	_, err := grammar.ParseString("test.c", "int main(void) #")
	require.Error(t, err)

	diag := grammar.Diagnostic(err)
	assert.Equal(t, cerrors.ErrorUnrecognizedCharacter, diag.Code)
	assert.Equal(t, token.Position{Line: 1, Column: 15}, diag.Position)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.c")
	require.NoError(t, os.WriteFile(path, []byte("int main(void) { return 42; }\n"), 0o644))

	program, err := grammar.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, program.Pos.Filename)
	assert.Equal(t, "42", program.Node().Find(ast.CONSTANT).Value)

	_, err = grammar.ParseFile(filepath.Join(t.TempDir(), "missing.c"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestEBNF(t *testing.T) {
	ebnf := grammar.EBNF()
	assert.Contains(t, ebnf, "Program")
	assert.Contains(t, ebnf, "Function")
}

func TestString(t *testing.T) {
	program, err := grammar.ParseString("main.c", "int main(void) { return 42; }")
	require.NoError(t, err)
	assert.Contains(t, program.String(), "main")
	assert.Contains(t, program.String(), "42")
}
