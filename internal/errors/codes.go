package errors

// Error codes for the C-Moon front end. They appear in rendered diagnostics
// and in LSP diagnostic payloads.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Syntax errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0001: A character no lexical rule accepts
	ErrorUnrecognizedCharacter = "E0001"

	// E0002: End of input inside a /* */ comment
	ErrorUnterminatedComment = "E0002"

	// E0003: Bad fraction, exponent or suffix in a numeric literal
	ErrorMalformedNumber = "E0003"

	// E0100: A grammar rule did not find the token it requires
	ErrorExpectedToken = "E0100"

	// E0101: Tokens left over after a complete program
	ErrorTrailingTokens = "E0101"

	// E0102: Input ran out while a rule was still matching
	ErrorUnexpectedEndOfInput = "E0102"

	// E0900: Two parsing engines disagree on the same input
	ErrorEngineMismatch = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnrecognizedCharacter:
		return "Character is not part of the C-Moon alphabet"
	case ErrorUnterminatedComment:
		return "Block comment is never closed with '*/'"
	case ErrorMalformedNumber:
		return "Numeric literal has an invalid fraction, exponent or suffix"
	case ErrorExpectedToken:
		return "Token does not fit the grammar rule being parsed"
	case ErrorTrailingTokens:
		return "Input continues after the end of the program"
	case ErrorUnexpectedEndOfInput:
		return "Input ended before the program was complete"
	case ErrorEngineMismatch:
		return "Hand-written parser and grammar engine produced different results"
	default:
		return "Unknown error"
	}
}

// Describe is GetErrorDescription for callers that must tell unknown codes
// apart, such as the CLI's explain command.
func Describe(code string) (string, bool) {
	description := GetErrorDescription(code)
	return description, description != "Unknown error"
}

// IsLexical reports whether code belongs to the lexical range.
func IsLexical(code string) bool {
	return code >= "E0001" && code <= "E0099"
}

// IsSyntax reports whether code belongs to the syntax range.
func IsSyntax(code string) bool {
	return code >= "E0100" && code <= "E0199"
}
