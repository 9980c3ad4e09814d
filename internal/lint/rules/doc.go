// Package rules ships the built-in style checks and registers them in
// the default lint registry at init time.
//
// Назначение: правила max-blank-lines, line-length, unicode-norm,
// import-order; каждое правило само разбирает свои опции.
// Не делает: обхода дерева (этим занимается internal/lint) и проверок
// пробелов (internal/wslint).
// Зависимости: internal/lint, go-runewidth, x/text/unicode/norm.
package rules
