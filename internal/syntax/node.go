package syntax

import (
	"sgstyle/internal/source"
)

// NodeID addresses a node inside its Tree's arena. 0 means "no node".
type NodeID uint32

const NoNode NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNode }

// Node is one tree vertex. FirstTok/LastTok is the half-open range of
// significant tokens the node covers, indexing Tree.Tokens. Children
// hold semantic sub-nodes only; keywords and punctuation are recovered
// from the token range when a consumer needs them.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Parent   NodeID
	FirstTok uint32
	LastTok  uint32
	Children []NodeID
}
