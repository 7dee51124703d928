package syntax

// Event is one step of the flat stream the parser emits in place of
// building a tree directly. A completed event stream has balanced
// open/close pairs and, once replayed by the tree builder, yields
// exactly one well-formed CST.
type Event struct {
	kind eventKind
	node SyntaxKind  // for open: the node kind (may be rewritten by complete)
	fwd  int          // for open: index of the event this one is wrapped by, or -1
	err  *ParseError  // for errorEvt
}

type eventKind uint8

const (
	openEvt eventKind = iota
	tokenEvt
	closeEvt
	errorEvt
)

// Marker is an opaque handle to an event slot returned by start. It
// must be completed by the parser before the parse finishes.
type Marker struct {
	index int
}

// CompletedMarker is returned by complete; it remembers where the node
// it closed began, so precede can retroactively wrap it.
type CompletedMarker struct {
	index int
}

// eventSink accumulates the event stream during parsing.
type eventSink struct {
	events []Event
}

// start reserves an open-event slot and returns a handle to it. The
// node kind is filled in later, by complete, so that callers can decide
// the kind only after seeing how far parsing got (this is what allows
// Pratt parsing to decide "was this a Literal or the LHS of an
// InfixExpr" after the fact).
func (s *eventSink) start() Marker {
	idx := len(s.events)
	s.events = append(s.events, Event{kind: openEvt, fwd: -1})
	return Marker{index: idx}
}

// complete writes kind into m's open-event slot, closes it with a
// matching close event, and returns a handle future Pratt steps can use
// to reparent this node via precede.
func (s *eventSink) complete(m Marker, kind SyntaxKind) CompletedMarker {
	s.events[m.index].node = kind
	s.events = append(s.events, Event{kind: closeEvt})
	return CompletedMarker{index: m.index}
}

// precede allocates a new open event that will retroactively become
// cm's parent. It records the new event's index as cm's forward
// parent: when the builder later replays cm's (already emitted) Start
// event, it follows that pointer forward, discovers the new node, and
// opens both so cm's subtree ends up nested as the new node's first
// child. The new node is left open for whatever the caller appends
// next (typically an operator token and a right-hand operand) before
// completing it.
func (s *eventSink) precede(cm CompletedMarker) Marker {
	m := s.start()
	s.events[cm.index].fwd = m.index
	return m
}

// token records that the cursor's current non-trivia token should be
// consumed into the innermost open node.
func (s *eventSink) token() {
	s.events = append(s.events, Event{kind: tokenEvt})
}

// errorEvent records a diagnostic at the current parse position without
// placing anything in the tree.
func (s *eventSink) errorEvent(e *ParseError) {
	s.events = append(s.events, Event{kind: errorEvt, err: e})
}
