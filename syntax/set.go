package syntax

// SyntaxSet is a set of syntax kinds used to accumulate the "expected"
// side of a diagnostic. A bitset gives O(1) membership tests; a
// parallel insertion-ordered slice lets diagnostics list the expected
// kinds in the order they were actually tried, per the rendering rule
// in diagnostic.go.
//
// Loosely based on rust-analyzer's TokenSet:
// https://github.com/rust-lang/rust-analyzer/blob/master/crates/parser/src/token_set.rs
type SyntaxSet struct {
	bits  uint64
	order []SyntaxKind
}

// NewSyntaxSet returns an empty set.
func NewSyntaxSet() SyntaxSet {
	return SyntaxSet{}
}

// SyntaxSetOf returns a set containing the given kinds, in order.
func SyntaxSetOf(kinds ...SyntaxKind) SyntaxSet {
	var s SyntaxSet
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add returns the set with kind inserted, appended to the insertion
// order if not already present.
func (s SyntaxSet) Add(kind SyntaxKind) SyntaxSet {
	if s.Contains(kind) {
		return s
	}
	s.bits |= 1 << kind
	s.order = append(append([]SyntaxKind(nil), s.order...), kind)
	return s
}

// Contains reports whether kind is a member of the set.
func (s SyntaxSet) Contains(kind SyntaxKind) bool {
	return s.bits&(1<<kind) != 0
}

// IsEmpty reports whether the set has no members.
func (s SyntaxSet) IsEmpty() bool {
	return s.bits == 0
}

// Kinds returns the set's members in the order they were added.
func (s SyntaxSet) Kinds() []SyntaxKind {
	return s.order
}

// ExprStartSet contains the kinds that can begin an expression, in the
// order the atom grammar tries them. String is a named atom at the
// token level but, like the func keyword, has no expression production
// in this grammar, so it is deliberately absent here. Because SetKw is
// also absent, a bare `set` encountered where an expression was
// expected naturally fails to start an atom — which is exactly the
// statement-level recovery point: the error surfaces without consuming
// `set`, and the next loop of root's stmt* begins a fresh VariableDef.
var ExprStartSet = SyntaxSetOf(Number, Identifier, Minus, LParen)
