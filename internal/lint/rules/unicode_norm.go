package rules

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"sgstyle/internal/diag"
	"sgstyle/internal/lint"
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

// unicodeNorm requires identifiers to be in Unicode NFC form. Визуально
// одинаковые имена с разными кодовыми точками (U+212B против U+00C5)
// ломают поиск и сравнение символов.
type unicodeNorm struct{}

func (unicodeNorm) Meta() lint.Meta {
	return lint.Meta{
		Name:     "unicode-norm",
		Doc:      "require identifiers in Unicode NFC form",
		Severity: diag.SevWarning,
		Enabled:  true,
		Kinds:    []syntax.NodeKind{syntax.KindName, syntax.KindTypeRef},
	}
}

func (unicodeNorm) Enter(ctx *lint.Context, id syntax.NodeID) error {
	tree := ctx.Tree()
	for _, t := range tree.TokenRange(id) {
		if t.Kind != token.Ident || norm.NFC.IsNormalString(t.Text) {
			continue
		}
		f := diag.Finding{
			Rule:    "unicode-norm",
			Message: fmt.Sprintf("identifier %q is not in NFC form", t.Text),
			Span:    t.Span,
		}
		ctx.Report(f.WithFix(
			"normalize to NFC",
			diag.TextEdit{Span: t.Span, NewText: norm.NFC.String(t.Text), OldText: t.Text},
		))
	}
	return nil
}
