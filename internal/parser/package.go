package parser

import (
	"cmoon/internal/ast"
	"cmoon/internal/lexer"
	"cmoon/token"
)

// ParseSource runs the lexer and the parser over source. On a lexical error
// only the error is returned; on a syntax error the tokens are returned with
// it so callers such as the language server can still highlight them.
func ParseSource(source string) ([]token.Token, *ast.Node, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, nil, err
	}

	root, err := New(tokens).Parse()
	if err != nil {
		return tokens, nil, err
	}

	return tokens, root, nil
}
