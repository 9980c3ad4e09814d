package syntax

import (
	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

// Tree is one parsed file: the node arena plus the token stream the
// nodes index into. Tokens is the full lexer output with the EOF token
// as its last element, so trailing trivia stays reachable.
type Tree struct {
	File   *source.File
	Tokens []token.Token
	Root   NodeID

	nodes *Arena[Node]
}

// Node returns the node for id, or nil for NoNode. Callers must treat
// the result as read-only.
func (t *Tree) Node(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

func (t *Tree) Kind(id NodeID) NodeKind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return KindError
}

func (t *Tree) Span(id NodeID) source.Span {
	if n := t.Node(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Node(id); n != nil {
		return n.Parent
	}
	return NoNode
}

func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.Node(id); n != nil {
		return n.Children
	}
	return nil
}

func (t *Tree) NumNodes() uint32 {
	return t.nodes.Len()
}

// TokenAt returns the i-th significant token, or nil out of range.
func (t *Tree) TokenAt(i uint32) *token.Token {
	if int(i) >= len(t.Tokens) {
		return nil
	}
	return &t.Tokens[i]
}

// FirstToken returns the first significant token the node covers.
func (t *Tree) FirstToken(id NodeID) *token.Token {
	n := t.Node(id)
	if n == nil || n.FirstTok >= n.LastTok {
		return nil
	}
	return &t.Tokens[n.FirstTok]
}

// LastToken returns the last significant token the node covers.
func (t *Tree) LastToken(id NodeID) *token.Token {
	n := t.Node(id)
	if n == nil || n.FirstTok >= n.LastTok {
		return nil
	}
	return &t.Tokens[n.LastTok-1]
}

// TokenRange returns the node's tokens as a subslice of Tree.Tokens.
func (t *Tree) TokenRange(id NodeID) []token.Token {
	n := t.Node(id)
	if n == nil || n.FirstTok >= n.LastTok {
		return nil
	}
	return t.Tokens[n.FirstTok:n.LastTok]
}

// Text reconstructs the node's verbatim source text. Interior trivia
// is included; leading trivia of the node's first token is not.
func (t *Tree) Text(id NodeID) string {
	n := t.Node(id)
	if n == nil || t.File == nil {
		return ""
	}
	return string(t.File.Content[n.Span.Start:n.Span.End])
}

// Ancestor walks parent links and returns the nearest enclosing node
// of the given kind, or NoNode.
func (t *Tree) Ancestor(id NodeID, kind NodeKind) NodeID {
	for p := t.Parent(id); p.IsValid(); p = t.Parent(p) {
		if t.Kind(p) == kind {
			return p
		}
	}
	return NoNode
}
