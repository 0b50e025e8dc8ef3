package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CMoonLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\r\n]*`, nil},
		{"BlockComment", `/\*([^*]|\*+[^*/])*\*+/`, nil},

		// Keywords before identifiers so reserved words never match @Ident
		{"Keyword", `\b(int|void|return|if|else|while)\b`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Numeric literals: fraction, exponent, u/l suffixes
		{"Number", `([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?([uU][lL]?|[lL][uU]?)?`, nil},

		// Punctuation
		{"Punctuation", `[(){};]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
