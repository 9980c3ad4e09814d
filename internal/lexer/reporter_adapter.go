package lexer

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/source"
)

// DiagReporter адаптирует diag.Reporter под тонкий интерфейс лексера.
// Лексические ошибки выходят как findings правила diag.RuleSyntax.
type DiagReporter struct {
	Next diag.Reporter
}

func (r DiagReporter) Report(span source.Span, msg string) {
	if r.Next == nil {
		return
	}
	r.Next.Report(diag.Finding{
		Rule:     diag.RuleSyntax,
		Severity: diag.SevError,
		Message:  msg,
		Span:     span,
	})
}
