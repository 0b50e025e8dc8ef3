package grammar

import (
	"errors"
	"strings"

	"cmoon/internal/ast"
	cerrors "cmoon/internal/errors"
	"cmoon/token"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Node converts the participle tree into the same chain the hand-written
// parser builds, so the two engines can be compared node for node.
func (p *Program) Node() *ast.Node {
	if p == nil || p.Function == nil || p.Function.Body == nil || p.Function.Body.Return == nil {
		return nil
	}

	fn := p.Function
	exp := fn.Body.Return

	constant := ast.NewNode(ast.CONSTANT, exp.Constant, position(exp.Pos))
	constant.LiteralType = classify(exp.Constant)

	statement := ast.NewNode(ast.RETURN, "return", position(fn.Body.Pos)).Link(constant)
	function := ast.NewNode(ast.FUNCTION, fn.Name, position(fn.Pos)).Link(statement)

	return ast.NewNode(ast.PROGRAM, "program", position(p.Pos)).Link(function)
}

// position maps participle's 1-based columns onto token.Position.
func position(pos lexer.Position) token.Position {
	return token.Position{Line: pos.Line, Column: max(0, pos.Column-1)}
}

// classify types a literal the lexer already validated.
func classify(lexeme string) token.VarKind {
	fractional := strings.ContainsAny(lexeme, ".eE")
	unsigned := strings.ContainsAny(lexeme, "uU")
	long := strings.ContainsAny(lexeme, "lL")
	return token.ClassifyLiteral(fractional, unsigned, long)
}

// Diagnostic converts a participle error into a reporter diagnostic. Lexer
// failures also satisfy participle.Error, so they are told apart first.
func Diagnostic(err error) cerrors.CompilerError {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return cerrors.NewError(cerrors.ErrorUnrecognizedCharacter, lerr.Message(), position(lerr.Position())).Build()
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		return cerrors.NewError(cerrors.ErrorExpectedToken, perr.Message(), position(perr.Position())).Build()
	}
	return cerrors.NewError(cerrors.ErrorExpectedToken, err.Error(), token.Position{Line: 1}).Build()
}
