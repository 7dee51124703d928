package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSyntaxSetContains(t *testing.T) {
	s := SyntaxSetOf(Number, Identifier, Minus, LParen)
	for _, k := range []SyntaxKind{Number, Identifier, Minus, LParen} {
		if !s.Contains(k) {
			t.Errorf("set should contain %v", k)
		}
	}
	for _, k := range []SyntaxKind{Plus, Star, SetKw} {
		if s.Contains(k) {
			t.Errorf("set should not contain %v", k)
		}
	}
}

func TestSyntaxSetKindsPreservesInsertionOrder(t *testing.T) {
	s := SyntaxSetOf(Number, Identifier, Minus, LParen)
	want := []SyntaxKind{Number, Identifier, Minus, LParen}
	if diff := cmp.Diff(want, s.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
}

func TestSyntaxSetAddIgnoresDuplicates(t *testing.T) {
	s := NewSyntaxSet().Add(Number).Add(Number).Add(Identifier)
	want := []SyntaxKind{Number, Identifier}
	if diff := cmp.Diff(want, s.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
}

func TestSyntaxSetIsEmpty(t *testing.T) {
	if !NewSyntaxSet().IsEmpty() {
		t.Error("empty set should report IsEmpty")
	}
	if NewSyntaxSet().Add(Number).IsEmpty() {
		t.Error("non-empty set should not report IsEmpty")
	}
}

func TestSyntaxSetAddDoesNotMutateShared(t *testing.T) {
	base := SyntaxSetOf(Number)
	_ = base.Add(Identifier)
	if diff := cmp.Diff([]SyntaxKind{Number}, base.Kinds()); diff != "" {
		t.Errorf("base set was mutated (-want +got):\n%s", diff)
	}
}
