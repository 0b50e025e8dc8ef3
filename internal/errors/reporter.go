package errors

import (
	"fmt"
	"strings"

	"cmoon/token"
	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error. The front end stops at its
// first problem, so every diagnostic it builds is an Error.
type ErrorLevel string

const Error ErrorLevel = "error"

// CompilerError is the rendering-ready form of a lexical or syntax error
type CompilerError struct {
	Level       ErrorLevel
	Code        string         // Error code like E0001
	Message     string         // Primary error message
	Position    token.Position // Location in source
	Length      int            // Length of the problematic region
	Suggestions []Suggestion   // Suggested fixes
	Notes       []string       // Additional context notes
	HelpText    string         // Help text for the error
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s[%s]: %s (line %d, column %d)", e.Level, e.Code, e.Message, e.Position.Line, e.Position.Column+1)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string         // Description of the suggestion
	Replacement string         // Suggested replacement text (optional)
	Position    token.Position // Position to apply the fix (optional)
	Length      int            // Length of text to replace (optional)
}

// ErrorReporter renders diagnostics against the source they came from
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err in the style:
//
//	error[E0100]: expected ';' after return statement, found '}'
//	    --> main.c:1:26
//	     │
//	   1 │ int main(void){return 42}
//	     │                          ^
//
// Columns are shown 1-based.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	levelColor := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	gutter := dim("│")

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column+1)
	fmt.Fprintf(&b, "%s %s\n", indent, gutter)

	if line, ok := er.line(err.Position.Line - 1); ok {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, err.Position.Line-1)), gutter, line)
	}

	if line, ok := er.line(err.Position.Line); ok {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, err.Position.Line)), gutter, line)
		fmt.Fprintf(&b, "%s %s %s\n", indent, gutter, marker(err.Position.Column, err.Length, levelColor))
	}

	if line, ok := er.line(err.Position.Line + 1); ok {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, err.Position.Line+1)), gutter, line)
	}

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(&b, "%s %s\n", indent, gutter)
		for i, s := range err.Suggestions {
			if i == 0 {
				fmt.Fprintf(&b, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), s.Message)
			} else {
				fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("    "), s.Message)
			}

			if s.Replacement != "" {
				fixed := er.applyReplacement(s)
				fmt.Fprintf(&b, "%s %s %s\n", indent, cyan("│"), cyan(fixed))
			}
		}
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, green("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// line returns the 1-based source line n.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

// applyReplacement shows the source line with the suggested text spliced in.
// It falls back to the bare replacement when the span is outside the source.
func (er *ErrorReporter) applyReplacement(s Suggestion) string {
	line, ok := er.line(s.Position.Line)
	if !ok || s.Position.Column < 0 || s.Position.Column+s.Length > len(line) {
		return s.Replacement
	}
	return line[:s.Position.Column] + s.Replacement + line[s.Position.Column+s.Length:]
}

// marker underlines length characters starting at the 0-based column.
func marker(column, length int, paint func(...interface{}) string) string {
	if length <= 0 {
		length = 1
	}
	return strings.Repeat(" ", max(0, column)) + paint(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
