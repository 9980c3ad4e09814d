// Package lint runs the rule pipeline: a single pre+post walk of a
// syntax tree dispatching each node to the enabled rules registered
// for its kind. Rules are independent; a failing rule is recorded and
// skipped without stopping the pass.
//
// Назначение: контекст одного прохода (конфиг, источник, сток находок),
// реестр правил, диспетчеризация по видам узлов.
// Не делает: обхода каталогов, параллелизма, печати находок.
// Зависимости: internal/syntax, internal/diag, internal/style.
package lint
