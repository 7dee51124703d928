package syntax

import (
	"strconv"
	"strings"
)

// Parse is the result of parsing source text: the built CST and every
// diagnostic recorded while building it. The tree is always present,
// even for empty or fully erroneous input — syntax errors are never
// fatal.
type Parse struct {
	Tree   *SyntaxNode
	Errors []*ParseError
}

// ParseText tokenizes and parses text, returning the resulting tree and
// diagnostics.
func ParseText(text string) Parse {
	tree, errs := parse(text)
	return Parse{Tree: tree, Errors: errs}
}

// Debug renders the tree in the byte-exact pretty-printed format used
// by tests, followed by one line per diagnostic in insertion order.
func (p Parse) Debug() string {
	var b strings.Builder
	writeDebugNode(&b, p.Tree, 0, 0)
	for _, e := range p.Errors {
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// writeDebugNode writes node's line (and its children's, recursively)
// at the given indent depth and absolute byte offset, returning the
// offset just past node.
func writeDebugNode(b *strings.Builder, node *SyntaxNode, depth int, offset int) int {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(node.Kind().String())
	b.WriteString("@")
	b.WriteString(strconv.Itoa(offset))
	b.WriteString("..")
	b.WriteString(strconv.Itoa(offset + node.Len()))
	if node.IsLeaf() {
		b.WriteString(" \"")
		b.WriteString(escapeText(node.Text()))
		b.WriteString("\"")
		b.WriteString("\n")
		return offset + node.Len()
	}
	b.WriteString("\n")
	pos := offset
	for _, c := range node.Children() {
		pos = writeDebugNode(b, c, depth+1, pos)
	}
	return pos
}

// escapeText escapes control characters that would otherwise make the
// debug dump ambiguous or hard to read.
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
