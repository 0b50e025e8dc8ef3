package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(CMoonLexer),
		participle.Elide("Whitespace", "Comment", "BlockComment"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseString(path, string(source))
}

func ParseString(sourceName string, source string) (*Program, error) {
	return parser.ParseString(sourceName, source)
}

// EBNF describes the grammar participle built, for the CLI's help output.
func EBNF() string {
	return parser.String()
}
