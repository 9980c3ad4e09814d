package lint

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/syntax"
)

// Meta describes a rule to the registry and the resolver.
type Meta struct {
	// Name identifies the rule in configuration and findings.
	Name string
	// Doc is the one-line summary shown by the rules listing.
	Doc string
	// Severity is the default severity; configuration may override it.
	Severity diag.Severity
	// Enabled is the default enabled state.
	Enabled bool
	// Kinds lists the node kinds the rule wants to see. The dispatch
	// table is built from this list, so traversal cost does not depend
	// on rules registered for other kinds.
	Kinds []syntax.NodeKind
}

// Rule is one independent style check. Enter runs pre-order on every
// node whose kind is listed in Meta().Kinds. Rules read their options
// through the context, emit findings through it, and never mutate the
// tree. A returned error fails this invocation only.
type Rule interface {
	Meta() Meta
	Enter(ctx *Context, id syntax.NodeID) error
}

// ExitRule is the optional post-order hook: Exit runs after the node's
// subtree has been visited.
type ExitRule interface {
	Rule
	Exit(ctx *Context, id syntax.NodeID) error
}
