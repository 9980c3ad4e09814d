// Package pretty lays out documents of text and breaks under a maximum
// line width. A document is built bottom-up from Text, Break, Group and
// Indent nodes; each Group renders either fully flat or fully broken,
// decided in one pass using flat widths precomputed during construction.
//
// Назначение: ядро раскладки форматтера; решения по группам
// детерминированы и доступны через отчёт рендера.
// Не делает: обхода синтаксического дерева, работы с исходником или IO.
// Зависимости: internal/style, go-runewidth.
package pretty
