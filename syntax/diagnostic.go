package syntax

import (
	"fmt"
	"strings"
)

// ParseError is a syntactic diagnostic: the set of kinds that would
// have been accepted at a position, the kind actually found there (nil
// at end of input), and the byte range the mismatch spans.
type ParseError struct {
	Expected SyntaxSet
	Found    *SyntaxKind
	Range    Range
}

// NewParseError records a mismatch between expected and found at range.
// found is nil to mean end of input.
func NewParseError(expected SyntaxSet, found *SyntaxKind, r Range) *ParseError {
	return &ParseError{Expected: expected, Found: found, Range: r}
}

// Error implements the error interface, rendering per the diagnostic
// format: "error at <start>..<end>: expected <kinds>, but found <kind>".
func (e *ParseError) Error() string {
	found := "end of input"
	if e.Found != nil {
		found = e.Found.Name()
	}
	return fmt.Sprintf("error at %d..%d: expected %s, but found %s",
		e.Range.Start, e.Range.End, joinKindNames(e.Expected.Kinds()), found)
}

// joinKindNames renders each kind's display name in the given order as
// an English list: "a", "a or b", "a, b or c".
func joinKindNames(kinds []SyntaxKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}

// ValidationError is a semantic-lite diagnostic produced by Validate,
// carrying a rendered message rather than an expected/found pair.
type ValidationError struct {
	Range   Range
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}
