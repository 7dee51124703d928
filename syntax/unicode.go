package syntax

import "unicode"

// isIdentStart reports whether c can start an identifier: the grammar
// restricts this to ASCII letters.
func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) && c < unicode.MaxASCII
}

// isIdentContinue reports whether c can continue an identifier once
// started: ASCII letters and digits.
func isIdentContinue(c rune) bool {
	return (unicode.IsLetter(c) || unicode.IsDigit(c)) && c < unicode.MaxASCII
}

// isSpace reports whether c is whitespace per the tokenizer's grammar:
// spaces and newlines only.
func isSpace(c rune) bool {
	return c == ' ' || c == '\n'
}
