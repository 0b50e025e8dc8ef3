package lsp

import (
	"cmoon/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions, StartChar and Length in UTF-16 units
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies the lexer output. The identifier right
// after the leading 'int' is the function being declared.
func collectSemanticTokens(text string, tokens []token.Token) []SemanticToken {
	var result []SemanticToken
	lines := newSourceLines(text)

	for i, tok := range tokens {
		var tokenType string
		modifiers := 0

		switch {
		case tok.Kind.IsKeyword():
			tokenType = "keyword"
		case tok.Kind == token.IDENTIFIER:
			tokenType = "function"
			if i > 0 && tokens[i-1].Kind == token.INT {
				modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
			}
		case tok.Kind == token.CONSTANT:
			tokenType = "number"
			modifiers = 1 << indexOf("readonly", SemanticTokenModifiers)
		default:
			continue
		}

		result = append(result, makeToken(lines, tok, tokenType, modifiers))
	}

	return result
}

// encodeSemanticTokens packs tokens into the LSP wire format (delta-line,
// delta-start, length, type, modifiers).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		deltaStart := t.StartChar
		if deltaLine == 0 {
			deltaStart = t.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, t.Length, uint32(t.TokenType), uint32(t.TokenModifiers))

		prevLine = t.Line
		prevStart = t.StartChar
	}

	return data
}

func makeToken(lines sourceLines, tok token.Token, tokenType string, modifiers int) SemanticToken {
	start := lines.character(tok.Position.Line, tok.Position.Column)
	end := lines.character(tok.Position.Line, tok.Position.Column+len(tok.Lexeme))
	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1), // LSP uses 0-based line numbers
		StartChar:      start,
		Length:         end - start,
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
