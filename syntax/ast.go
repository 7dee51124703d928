package syntax

import "strconv"

// astNode is embedded by every typed view to provide the common
// operations: access to the underlying red-layer node and its range.
// AST views never own tokens; they borrow from the CST they were built
// over and are cheap to copy.
type astNode struct {
	node *LinkedNode
}

// Node returns the underlying CST node the view wraps.
func (a astNode) Node() *LinkedNode { return a.node }

// Range returns the view's byte range.
func (a astNode) Range() Range { return a.node.Range() }

// Stmt is a tagged view over a statement: either a VariableDef or a
// bare expression. Every Expr variant also satisfies Stmt, so a
// Root's statement list can hold either directly without an extra
// wrapper kind.
type Stmt interface {
	isStmt()
}

// Expr is a tagged view over an expression. Its concrete type is one of
// BinaryExpr, UnaryExpr, Literal, ParenExpr, or VariableRef.
type Expr interface {
	Stmt
	isExpr()
}

// Root is the top-level view: a sequence of statements.
type Root struct {
	astNode
}

// AsRoot casts node to a Root view, succeeding only if node has Root
// kind.
func AsRoot(node *SyntaxNode) *Root {
	if node == nil || node.Kind() != Root {
		return nil
	}
	r := Root{astNode{LinkNode(node)}}
	return &r
}

// Stmts returns the root's statements in source order, skipping trivia.
func (r Root) Stmts() []Stmt {
	var out []Stmt
	for _, c := range r.node.Children() {
		if c.Kind().IsTrivia() {
			continue
		}
		if s := stmtFromNode(c); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// stmtFromNode converts a direct child of Root into a Stmt view.
func stmtFromNode(node *LinkedNode) Stmt {
	if node.Kind() == VariableDef {
		return VariableDef{astNode{node}}
	}
	return exprFromNode(node)
}

// exprFromNode converts node into its typed Expr view, or nil if node's
// kind is not one of the expression kinds.
func exprFromNode(node *LinkedNode) Expr {
	switch node.Kind() {
	case Literal:
		return Literal{astNode{node}}
	case VariableRef:
		return VariableRef{astNode{node}}
	case InfixExpr:
		return BinaryExpr{astNode{node}}
	case PrefixExpr:
		return UnaryExpr{astNode{node}}
	case ParenExpr:
		return ParenExpr{astNode{node}}
	default:
		return nil
	}
}

// firstExprChild returns the first direct child of node that is itself
// an expression, or nil.
func firstExprChild(node *LinkedNode) Expr {
	for _, c := range node.Children() {
		if e := exprFromNode(c); e != nil {
			return e
		}
	}
	return nil
}

// exprChildren returns every direct child of node that is itself an
// expression, in source order.
func exprChildren(node *LinkedNode) []Expr {
	var out []Expr
	for _, c := range node.Children() {
		if e := exprFromNode(c); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// VariableDef is `'set' Identifier '=' expr`.
type VariableDef struct {
	astNode
}

func (VariableDef) isStmt() {}

// Name returns the defined identifier's text and true, or "" and false
// if the identifier token is missing (a parse recovered from an error).
func (d VariableDef) Name() (string, bool) {
	for _, c := range d.node.Children() {
		if c.Kind() == Identifier {
			return c.Get().Text(), true
		}
	}
	return "", false
}

// Value returns the statement's right-hand expression, or nil if it is
// missing — per an explicit open question, `set a =` with no following
// expression is a valid, if incomplete, VariableDef rather than a parse
// failure.
func (d VariableDef) Value() Expr {
	return firstExprChild(d.node)
}

// BinaryExpr is an InfixExpr node: `lhs op rhs`.
type BinaryExpr struct {
	astNode
}

func (BinaryExpr) isStmt() {}
func (BinaryExpr) isExpr() {}

// Lhs returns the left operand.
func (b BinaryExpr) Lhs() Expr {
	children := exprChildren(b.node)
	if len(children) < 1 {
		return nil
	}
	return children[0]
}

// Rhs returns the right operand.
func (b BinaryExpr) Rhs() Expr {
	children := exprChildren(b.node)
	if len(children) < 2 {
		return nil
	}
	return children[1]
}

// Op scans the node's children for the first operator token and
// reports its kind. ok is false if malformed input left no operator.
func (b BinaryExpr) Op() (op BinOp, ok bool) {
	for _, c := range b.node.Children() {
		if o, ok := BinOpFromSyntaxKind(c.Kind()); ok {
			return o, true
		}
	}
	return 0, false
}

// UnaryExpr is a PrefixExpr node: `op expr`.
type UnaryExpr struct {
	astNode
}

func (UnaryExpr) isStmt() {}
func (UnaryExpr) isExpr() {}

// Operand returns the operand the prefix operator applies to.
func (u UnaryExpr) Operand() Expr {
	return firstExprChild(u.node)
}

// Op reports the prefix operator's kind.
func (u UnaryExpr) Op() (op UnOp, ok bool) {
	for _, c := range u.node.Children() {
		if o, ok := UnOpFromSyntaxKind(c.Kind()); ok {
			return o, true
		}
	}
	return 0, false
}

// Literal is a numeric literal.
type Literal struct {
	astNode
}

func (Literal) isStmt() {}
func (Literal) isExpr() {}

// Parse attempts base-10 unsigned 64-bit conversion of the literal's
// token text, returning ok=false on overflow.
func (l Literal) Parse() (value uint64, ok bool) {
	for _, c := range l.node.Children() {
		if c.Kind() == Number {
			v, err := strconv.ParseUint(c.Get().Text(), 10, 64)
			return v, err == nil
		}
	}
	return 0, false
}

// ParenExpr is a parenthesized expression: `( expr )`.
type ParenExpr struct {
	astNode
}

func (ParenExpr) isStmt() {}
func (ParenExpr) isExpr() {}

// Inner returns the parenthesized expression.
func (p ParenExpr) Inner() Expr {
	return firstExprChild(p.node)
}

// VariableRef is a reference to a named variable.
type VariableRef struct {
	astNode
}

func (VariableRef) isStmt() {}
func (VariableRef) isExpr() {}

// Name returns the referenced identifier's text.
func (v VariableRef) Name() string {
	for _, c := range v.node.Children() {
		if c.Kind() == Identifier {
			return c.Get().Text()
		}
	}
	return ""
}
