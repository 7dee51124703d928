package syntax

import "testing"

func TestLeafAndInner(t *testing.T) {
	lhs := Leaf(Number, "1")
	plus := Leaf(Plus, "+")
	rhs := Leaf(Number, "2")
	inner := Inner(InfixExpr, []*SyntaxNode{lhs, plus, rhs})

	if inner.Kind() != InfixExpr {
		t.Errorf("Kind() = %v, want InfixExpr", inner.Kind())
	}
	if inner.Len() != 3 {
		t.Errorf("Len() = %d, want 3", inner.Len())
	}
	if inner.IsLeaf() {
		t.Error("inner node reported as leaf")
	}
	if !lhs.IsLeaf() {
		t.Error("leaf node not reported as leaf")
	}
	if got := inner.IntoText(); got != "1+2" {
		t.Errorf("IntoText() = %q, want %q", got, "1+2")
	}
}

func TestLinkedNodeRanges(t *testing.T) {
	tree := Inner(Root, []*SyntaxNode{
		Inner(Literal, []*SyntaxNode{Leaf(Number, "123")}),
	})
	root := LinkNode(tree)
	if r := root.Range(); r.Start != 0 || r.End != 3 {
		t.Errorf("root range = %+v, want {0 3}", r)
	}
	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
	lit := children[0]
	if lit.Kind() != Literal {
		t.Errorf("child kind = %v, want Literal", lit.Kind())
	}
	if r := lit.Range(); r.Start != 0 || r.End != 3 {
		t.Errorf("literal range = %+v, want {0 3}", r)
	}
	if lit.Parent() != root {
		t.Error("literal's parent should be the root view")
	}
}

func TestLinkedNodeOffsetsAccumulate(t *testing.T) {
	tree := Inner(Root, []*SyntaxNode{
		Leaf(Number, "12"),
		Leaf(Whitespace, " "),
		Leaf(Number, "3"),
	})
	root := LinkNode(tree)
	children := root.Children()
	want := []Range{{0, 2}, {2, 3}, {3, 4}}
	for i, c := range children {
		if c.Range() != want[i] {
			t.Errorf("child %d range = %+v, want %+v", i, c.Range(), want[i])
		}
	}
}

func TestLinkedNodeSiblings(t *testing.T) {
	tree := Inner(Root, []*SyntaxNode{
		Leaf(Number, "1"),
		Leaf(Plus, "+"),
		Leaf(Number, "2"),
	})
	root := LinkNode(tree)
	children := root.Children()
	if children[0].PrevSibling() != nil {
		t.Error("first child should have no previous sibling")
	}
	if children[0].NextSibling().Kind() != Plus {
		t.Error("first child's next sibling should be the Plus token")
	}
	if children[2].NextSibling() != nil {
		t.Error("last child should have no next sibling")
	}
	if children[1].PrevSibling().Kind() != Number {
		t.Error("middle child's previous sibling should be the first Number")
	}
}

func TestLinkedNodeLeafAt(t *testing.T) {
	tree := Inner(Root, []*SyntaxNode{
		Inner(InfixExpr, []*SyntaxNode{
			Leaf(Number, "1"),
			Leaf(Plus, "+"),
			Leaf(Number, "2"),
		}),
	})
	root := LinkNode(tree)
	leaf := root.LeafAt(1)
	if leaf.Kind() != Plus {
		t.Errorf("LeafAt(1) = %v, want Plus", leaf.Kind())
	}
	leaf = root.LeafAt(0)
	if leaf.Kind() != Number {
		t.Errorf("LeafAt(0) = %v, want Number", leaf.Kind())
	}
}
