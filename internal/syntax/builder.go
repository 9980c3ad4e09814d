package syntax

import (
	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

// Builder accumulates nodes bottom-up: children are allocated before
// their parent, so a half-built parent is unrepresentable and parent
// links are assigned exactly once.
type Builder struct {
	file   *source.File
	tokens []token.Token
	nodes  *Arena[Node]
}

// NewBuilder starts a tree over the given token stream. tokens is the
// full lexer output, EOF token last.
func NewBuilder(file *source.File, tokens []token.Token) *Builder {
	return &Builder{
		file:   file,
		tokens: tokens,
		nodes:  NewArena[Node](uint(len(tokens))),
	}
}

// Leaf allocates a single-token node (names, literals).
func (b *Builder) Leaf(kind NodeKind, tok uint32) NodeID {
	return b.Node(kind, tok, tok+1)
}

// Node allocates a node covering tokens [firstTok, lastTok) and adopts
// children. lastTok must be greater than firstTok; the span is derived
// from the covered tokens.
func (b *Builder) Node(kind NodeKind, firstTok, lastTok uint32, children ...NodeID) NodeID {
	sp := b.tokens[firstTok].Span
	if lastTok-1 > firstTok {
		sp = sp.Cover(b.tokens[lastTok-1].Span)
	}
	id := NodeID(b.nodes.Allocate(Node{
		Kind:     kind,
		Span:     sp,
		FirstTok: firstTok,
		LastTok:  lastTok,
		Children: children,
	}))
	for _, c := range children {
		b.nodes.Get(uint32(c)).Parent = id
	}
	return id
}

// Finish seals the arena into a Tree rooted at root. The root's span
// is widened to the whole file so leading and trailing trivia belong
// to it.
func (b *Builder) Finish(root NodeID) *Tree {
	if n := b.nodes.Get(uint32(root)); n != nil && b.file != nil {
		n.Span = b.file.FullSpan()
	}
	return &Tree{
		File:   b.file,
		Tokens: b.tokens,
		Root:   root,
		nodes:  b.nodes,
	}
}
