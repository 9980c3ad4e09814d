// Package syntax defines the concrete syntax tree consumed by the
// formatting and linting passes.
//
// Nodes live in a flat arena and reference each other by NodeID, so a
// built Tree is a compact value that is immutable after construction
// and safe for concurrent read-only traversal. Every node records the
// half-open range of significant tokens it covers; together with the
// token slice kept on the Tree this is enough to reconstruct verbatim
// source text, comments included, for any subtree.
package syntax
