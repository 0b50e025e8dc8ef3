package parser

import (
	"errors"

	"cmoon/internal/ast"
	"cmoon/token"
	"github.com/tliron/commonlog"
)

var logger = commonlog.GetLogger("cmoon.parser")

// Parser is a recursive-descent parser over a finished token sequence. It
// reads the tokens and never modifies them.
type Parser struct {
	tokens  []token.Token
	current int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse matches the whole token sequence against the grammar and returns the
// root PROGRAM node, or the first *ParseError.
func (p *Parser) Parse() (*ast.Node, error) {
	p.current = 0

	program, err := p.parseProgram()
	if err != nil {
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			parseErr = p.errorAtCurrent(err.Error(), token.ERROR)
		}
		logger.Debugf("parse error: %s", parseErr)
		return nil, parseErr
	}

	logger.Debug("parsing completed successfully")
	return program, nil
}

// <program> ::= <function> EOF
func (p *Parser) parseProgram() (*ast.Node, error) {
	logger.Debug("parsing program")

	program := ast.NewNode(ast.PROGRAM, "program", p.startPosition())

	function, err := p.parseFunction()
	if err != nil {
		return nil, err
	}
	program.Link(function)

	// The lexer does not emit EOF, but hand-built streams may end with one.
	if p.current < len(p.tokens) && p.tokens[p.current].Kind == token.EOF {
		p.advance()
	}

	if p.current < len(p.tokens) {
		return nil, p.errorTrailing()
	}

	return program, nil
}

// <function> ::= "int" <identifier> "(" "void" ")" "{" <statement> "}"
func (p *Parser) parseFunction() (*ast.Node, error) {
	logger.Debug("parsing function")

	start, err := p.expectAndReturn(token.INT, "expected 'int' keyword at start of function")
	if err != nil {
		return nil, err
	}

	name, err := p.expectAndReturn(token.IDENTIFIER, "expected function identifier")
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.LEFT_PAREN, "expected '(' after function identifier"); err != nil {
		return nil, err
	}
	if err := p.expect(token.VOID, "expected 'void' keyword in function parameters"); err != nil {
		return nil, err
	}
	if err := p.expect(token.RIGHT_PAREN, "expected ')' after function parameters"); err != nil {
		return nil, err
	}
	if err := p.expect(token.LEFT_BRACE, "expected '{' to begin function body"); err != nil {
		return nil, err
	}

	statement, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.RIGHT_BRACE, "expected '}' to end function body"); err != nil {
		return nil, err
	}

	return ast.NewNode(ast.FUNCTION, name.Lexeme, start.Position).Link(statement), nil
}

// <statement> ::= "return" <exp> ";"
func (p *Parser) parseStatement() (*ast.Node, error) {
	logger.Debug("parsing statement")

	keyword, err := p.expectAndReturn(token.RETURN, "expected 'return' keyword")
	if err != nil {
		return nil, err
	}

	exp, err := p.parseExp()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.SEMICOLON, "expected ';' after return statement"); err != nil {
		return nil, err
	}

	return ast.NewNode(ast.RETURN, keyword.Lexeme, keyword.Position).Link(exp), nil
}

// <exp> ::= <constant>
func (p *Parser) parseExp() (*ast.Node, error) {
	logger.Debug("parsing expression")

	constant, err := p.expectAndReturn(token.CONSTANT, "expected integer constant in expression")
	if err != nil {
		return nil, err
	}

	node := ast.NewNode(ast.CONSTANT, constant.Lexeme, constant.Position)
	node.LiteralType = constant.LiteralType
	return node, nil
}
