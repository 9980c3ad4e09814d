package syntax

// Visitor receives entry and exit hooks during a Walk. Enter returning
// false prunes the subtree: children are not visited and Leave is not
// called for the pruned node.
type Visitor interface {
	Enter(id NodeID) bool
	Leave(id NodeID)
}

// Walk traverses the tree in a single pass, calling Enter pre-order
// and Leave post-order.
func Walk(t *Tree, v Visitor) {
	if t.Root.IsValid() {
		walk(t, t.Root, v)
	}
}

func walk(t *Tree, id NodeID, v Visitor) {
	if !v.Enter(id) {
		return
	}
	for _, c := range t.Node(id).Children {
		walk(t, c, v)
	}
	v.Leave(id)
}

// Inspect is the pre-order-only convenience; f returning false prunes
// the subtree.
func Inspect(t *Tree, f func(NodeID) bool) {
	Walk(t, inspector(f))
}

type inspector func(NodeID) bool

func (f inspector) Enter(id NodeID) bool { return f(id) }
func (f inspector) Leave(NodeID)         {}
