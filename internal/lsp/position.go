package lsp

import (
	"strings"
	"unicode/utf16"
)

// sourceLines maps the lexer's byte columns onto the UTF-16 code units LSP
// clients count characters in.
type sourceLines []string

func newSourceLines(text string) sourceLines {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// character converts a 0-based byte column on a 1-based line. Columns past
// the end of the line count one unit per byte.
func (s sourceLines) character(line, column int) uint32 {
	column = max(0, column)
	if line < 1 || line > len(s) {
		return uint32(column)
	}

	text := s[line-1]
	n := min(column, len(text))

	units := 0
	for _, r := range text[:n] {
		units += utf16.RuneLen(r)
	}
	return uint32(units + column - n)
}
