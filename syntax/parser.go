package syntax

// Parser drives a Pratt recognizer over a token buffer and emits a flat
// event stream rather than building a tree directly (see events.go).
// It is entirely trivia-blind: the cursor skips whitespace and comments
// on every peek and bump, so grammar code below never has to think
// about them. Re-threading trivia into the tree is the builder's job.
type Parser struct {
	cursor   *Cursor
	sink     eventSink
	expected SyntaxSet // accumulates kinds checked-and-missed since the last successful bump
	depth    int
}

// MaxDepth bounds expression nesting so that pathological input (a run
// of thousands of unmatched '(') cannot blow the Go call stack.
const MaxDepth = 256

// parse tokenizes text and runs the grammar, returning the built CST
// together with every diagnostic recorded along the way. A Root node is
// always returned, even for empty or fully erroneous input.
func parse(text string) (*SyntaxNode, []*ParseError) {
	tokens := Tokenize(text)
	p := &Parser{cursor: NewCursor(tokens)}
	root := p.sink.start()
	p.parseRoot()
	p.sink.complete(root, Root)
	return buildTree(p.sink.events, tokens)
}

// parseRoot implements `root = stmt*` until end of input.
func (p *Parser) parseRoot() {
	for !p.cursor.AtEnd() {
		p.parseStmt()
	}
}

// parseStmt implements the `stmt` production: a `set` introduces a
// variable definition, anything else is parsed as an expression
// statement.
//
// A bare expression statement that cannot even start an atom (a stray
// ')', '=', ';', an infix operator in leading position, or an Error
// token) consumes nothing on its own: parseAtom reports the mismatch
// and leaves the lookahead untouched so that a genuine 'set' recovery
// point further up is never swallowed. At statement level there is no
// such further-up point to defer to, so parseStmt itself forces
// progress by consuming the offending token once no other production
// claimed it — otherwise root's `stmt*` loop would spin on it forever.
func (p *Parser) parseStmt() {
	if p.at(SetKw) {
		p.parseVariableDef()
		return
	}
	before := p.cursor.PeekRange()
	p.parseExpr(0)
	if !p.cursor.AtEnd() && p.cursor.PeekRange() == before {
		p.bump()
	}
}

// parseVariableDef implements `variable_def = 'set' Identifier '=' expr`.
// Missing tokens are reported but do not abort the statement: the
// marker still completes as VariableDef with whatever children it
// managed to collect.
func (p *Parser) parseVariableDef() {
	m := p.sink.start()
	p.bump() // 'set'
	p.expect(Identifier)
	if p.expect(Equals) {
		p.parseExpr(0)
	}
	p.eatIf(Semicolon)
	p.sink.complete(m, VariableDef)
}

// parseExpr is the Pratt loop: parse a left-hand atom or prefix form,
// then extend it with infix operators whose left binding power is at
// least minBp.
func (p *Parser) parseExpr(minBp uint8) {
	lhs, ok := p.parseAtom()
	if !ok {
		return
	}
	for {
		bp, ok := infixBindingPower(p.current())
		if !ok || bp.left < minBp {
			return
		}
		m := p.sink.precede(lhs)
		p.bump() // operator
		p.parseExpr(bp.right)
		lhs = p.sink.complete(m, InfixExpr)
	}
}

// parseAtom parses a single operand: a literal, a variable reference, a
// parenthesized expression, or a unary-minus prefix form. It reports
// false if no atom could be started at all (used by callers to decide
// whether to keep trying to extend an expression or bail out).
func (p *Parser) parseAtom() (CompletedMarker, bool) {
	switch p.current() {
	case Number:
		m := p.sink.start()
		p.bump()
		return p.sink.complete(m, Literal), true
	case Identifier:
		m := p.sink.start()
		p.bump()
		return p.sink.complete(m, VariableRef), true
	case Minus:
		if p.depth >= MaxDepth {
			p.errorExpectedSet(ExprStartSet)
			return CompletedMarker{}, false
		}
		m := p.sink.start()
		p.bump()
		p.depth++
		p.parseExpr(prefixBindingPower)
		p.depth--
		return p.sink.complete(m, PrefixExpr), true
	case LParen:
		if p.depth >= MaxDepth {
			p.errorExpectedSet(ExprStartSet)
			return CompletedMarker{}, false
		}
		m := p.sink.start()
		p.bump()
		p.depth++
		p.parseExpr(0)
		p.depth--
		p.expect(RParen)
		return p.sink.complete(m, ParenExpr), true
	default:
		p.errorExpectedSet(ExprStartSet)
		return CompletedMarker{}, false
	}
}

// current returns the kind of the current lookahead token, skipping
// trivia, without consuming it.
func (p *Parser) current() SyntaxKind {
	return p.cursor.Peek()
}

// at reports whether the current lookahead token has kind, recording
// kind into the expected-set accumulator when it does not.
func (p *Parser) at(kind SyntaxKind) bool {
	if p.current() == kind {
		return true
	}
	p.expected = p.expected.Add(kind)
	return false
}

// bump consumes the current lookahead token unconditionally, clearing
// the expected-set accumulator since a token was successfully matched.
func (p *Parser) bump() {
	p.cursor.Bump()
	p.sink.token()
	p.expected = NewSyntaxSet()
}

// eatIf consumes the current lookahead token if it has kind, and
// reports whether it did. Unlike expect, a miss is silent: callers use
// it for genuinely optional tokens such as the trailing ';'.
func (p *Parser) eatIf(kind SyntaxKind) bool {
	if p.current() != kind {
		return false
	}
	p.bump()
	return true
}

// expect consumes the current lookahead token if it has kind; otherwise
// it emits a diagnostic (using the accumulated expected set) and leaves
// the lookahead untouched.
func (p *Parser) expect(kind SyntaxKind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	p.errorExpectedSet(p.expected)
	return false
}

// errorExpectedSet emits an Error event covering the current lookahead
// position, reporting expected as the set of acceptable kinds, then
// clears the accumulator so the next mismatch starts fresh.
func (p *Parser) errorExpectedSet(expected SyntaxSet) {
	r := p.cursor.PeekRange()
	var found *SyntaxKind
	if !p.cursor.AtEnd() {
		k := p.current()
		found = &k
	}
	p.sink.errorEvent(NewParseError(expected, found, r))
	p.expected = NewSyntaxSet()
}
