package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the declarative rendering of
//
//	int <identifier>(void) { return <constant>; }
//
// Participle rejects any input left over after Function.
type Program struct {
	Pos      lexer.Position
	Function *Function `@@`
}

type Function struct {
	Pos        lexer.Position
	ReturnType string     `@"int"`
	Name       string     `@Ident`
	Params     string     `"(" @"void" ")"`
	Body       *Statement `"{" @@ "}"`
}

type Statement struct {
	Pos    lexer.Position
	Return *Expr `"return" @@ ";"`
}

type Expr struct {
	Pos      lexer.Position
	Constant string `@Number`
}
