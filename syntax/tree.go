package syntax

// buildTree replays an event stream against the original token buffer,
// producing the root green node plus the diagnostics collected along
// the way. It is the only place that allocates tree structure; the
// parser itself only ever appends events.
func buildTree(events []Event, tokens []Token) (*SyntaxNode, []*ParseError) {
	sentinel := &frame{kind: Eof}
	b := &builder{events: events, tokens: tokens, skip: make([]bool, len(events)), stack: []*frame{sentinel}}
	for b.pos < len(b.events) {
		b.step()
	}
	if len(b.stack) != 1 || len(sentinel.children) != 1 {
		panic("syntax: unbalanced event stream")
	}
	return sentinel.children[0], b.errors
}

type frame struct {
	kind     SyntaxKind
	children []*SyntaxNode
}

func (f *frame) finish() *SyntaxNode {
	return Inner(f.kind, f.children)
}

type builder struct {
	events []Event
	tokens []Token
	skip   []bool

	pos    int // index into events
	ti     int // index into tokens, raw (includes trivia)
	stack  []*frame
	errors []*ParseError
}

func (b *builder) step() {
	idx := b.pos
	if b.skip[idx] {
		b.pos++
		return
	}
	ev := b.events[idx]
	switch ev.kind {
	case openEvt:
		// Trivia pending before a new node stays with the node already
		// open; Root's own leading trivia waits for its first child.
		if len(b.stack) > 1 {
			b.drainTrivia()
		}
		b.openChain(idx)
		b.pos++
	case tokenEvt:
		b.drainTrivia()
		tok := b.tokens[b.ti]
		b.ti++
		b.push(Leaf(tok.Kind, tok.Text))
		b.pos++
	case closeEvt:
		b.drainTrivia()
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.push(top.finish())
		b.pos++
	case errorEvt:
		b.errors = append(b.errors, ev.err)
		b.pos++
	default:
		panic("syntax: unknown event kind")
	}
}

// openChain handles a Start event at idx, following its forward-parent
// chain (if any) to discover every node that was precede()d on top of
// it. idx is always the chain's innermost (and chronologically
// earliest) member; each hop through fwd lands on a node that wraps
// the previous one. Those later Start events are marked skip so the
// main loop does not reopen them when it reaches their own position:
// they are opened here instead, outermost-first, so idx's own node
// ends up innermost — the new top of stack, ready to receive idx's
// original children.
func (b *builder) openChain(idx int) {
	chain := []int{idx}
	cur := idx
	for b.events[cur].fwd != -1 {
		cur = b.events[cur].fwd
		b.skip[cur] = true
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		j := chain[i]
		b.stack = append(b.stack, &frame{kind: b.events[j].node})
	}
}

// drainTrivia consumes any trivia tokens sitting at the cursor and
// appends them as leaves of the node currently open, implementing the
// attachment rule in full: whatever node is open at the moment trivia
// is encountered receives it.
func (b *builder) drainTrivia() {
	for b.ti < len(b.tokens) && b.tokens[b.ti].Kind.IsTrivia() {
		tok := b.tokens[b.ti]
		b.ti++
		b.push(Leaf(tok.Kind, tok.Text))
	}
}

// push appends node as a child of the innermost open frame.
func (b *builder) push(node *SyntaxNode) {
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, node)
}
