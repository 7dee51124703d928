package syntax

import "testing"

func TestSyntaxKindIsTrivia(t *testing.T) {
	trivia := []SyntaxKind{Whitespace, Comment}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Errorf("%v.IsTrivia() = false, want true", k)
		}
	}
	nonTrivia := []SyntaxKind{Number, Identifier, SetKw, Plus, Root}
	for _, k := range nonTrivia {
		if k.IsTrivia() {
			t.Errorf("%v.IsTrivia() = true, want false", k)
		}
	}
}

func TestSyntaxKindIsKeyword(t *testing.T) {
	if !SetKw.IsKeyword() || !FuncKw.IsKeyword() {
		t.Error("SetKw and FuncKw must be keywords")
	}
	if Identifier.IsKeyword() {
		t.Error("Identifier must not be a keyword")
	}
}

func TestSyntaxKindName(t *testing.T) {
	tests := []struct {
		kind SyntaxKind
		want string
	}{
		{Eof, "end of input"},
		{Error, "an unrecognized token"},
		{Plus, "'+'"},
		{Minus, "'-'"},
		{LParen, "'('"},
		{Identifier, "identifier"},
		{Number, "number"},
		{SetKw, "'set'"},
	}
	for _, tt := range tests {
		if got := tt.kind.Name(); got != tt.want {
			t.Errorf("%v.Name() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSyntaxKindString(t *testing.T) {
	if got := InfixExpr.String(); got != "InfixExpr" {
		t.Errorf("InfixExpr.String() = %q, want %q", got, "InfixExpr")
	}
	if got := Number.String(); got != "Number" {
		t.Errorf("Number.String() = %q, want %q", got, "Number")
	}
}
