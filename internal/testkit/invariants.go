// Package testkit holds structural checks shared by parser and
// formatter tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sgstyle/internal/source"
	"sgstyle/internal/syntax"
)

// CheckTreeInvariants runs the structural invariants every parse must
// uphold:
//  1. the root is a file node whose span stays inside the content
//  2. every node's span is contained in its parent's span
//  3. children are ordered by start offset
//  4. parent backlinks match the traversal
//  5. token ranges are well-formed and index the token stream
func CheckTreeInvariants(tree *syntax.Tree, file *source.File) error {
	if tree == nil || file == nil {
		return fmt.Errorf("nil tree or file")
	}
	if !tree.Root.IsValid() {
		return fmt.Errorf("tree has no root")
	}
	if got := tree.Kind(tree.Root); got != syntax.KindFile {
		return fmt.Errorf("root kind = %v, want file", got)
	}

	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	rootSpan := tree.Span(tree.Root)
	if rootSpan.File != file.ID {
		return fmt.Errorf("root span file id: got=%d want=%d", rootSpan.File, file.ID)
	}
	if rootSpan.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", rootSpan.End, lenContent)
	}

	numTok, err := safecast.Conv[uint32](len(tree.Tokens))
	if err != nil {
		return fmt.Errorf("token count overflow: %w", err)
	}
	return checkNode(tree, tree.Root, syntax.NoNode, numTok)
}

func checkNode(tree *syntax.Tree, id, parent syntax.NodeID, numTok uint32) error {
	n := tree.Node(id)
	if n == nil {
		return fmt.Errorf("dangling node id=%d", id)
	}
	if n.Parent != parent {
		return fmt.Errorf("node %d parent = %d, want %d", id, n.Parent, parent)
	}
	if n.FirstTok > n.LastTok {
		return fmt.Errorf("node %d token range inverted: [%d,%d)", id, n.FirstTok, n.LastTok)
	}
	if n.LastTok > numTok {
		return fmt.Errorf("node %d token range beyond stream: %d > %d", id, n.LastTok, numTok)
	}
	if n.Span.End < n.Span.Start {
		return fmt.Errorf("node %d span inverted: %v", id, n.Span)
	}

	if parent != syntax.NoNode {
		parentSpan := tree.Span(parent)
		if n.Span.File != parentSpan.File {
			return fmt.Errorf("node %d span file differs from parent", id)
		}
		if n.Span.Start < parentSpan.Start || n.Span.End > parentSpan.End {
			return fmt.Errorf("node %d span %v escapes parent span %v", id, n.Span, parentSpan)
		}
	}

	var prevStart uint32
	for i, child := range n.Children {
		childSpan := tree.Span(child)
		if i > 0 && childSpan.Start < prevStart {
			return fmt.Errorf("children of node %d out of order at index %d", id, i)
		}
		prevStart = childSpan.Start
		if err := checkNode(tree, child, id, numTok); err != nil {
			return err
		}
	}
	return nil
}
