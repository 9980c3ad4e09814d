// Package format translates a syntax tree into a layout document and
// renders it: canonical formatting for fmt, whitespace-only rendering
// for the whitespace linter. Comments survive both modes; the only
// token-level canonicalization is dropping source trailing commas in
// canonical mode.
//
// Назначение: печать дерева через internal/pretty; единственная точка,
// где определён канонический стиль.
// Не делает: разбора, правок исходника, IO.
// Зависимости: internal/syntax, internal/pretty, internal/style.
package format
