package rules

import (
	"fmt"
	"strings"

	"sgstyle/internal/diag"
	"sgstyle/internal/lint"
	"sgstyle/internal/syntax"
)

// importOrder checks that the leading run of imports is sorted by path.
// Отчёт один на файл: только первое нарушение, дальше порядок всё
// равно чинится целиком.
type importOrder struct{}

func (importOrder) Meta() lint.Meta {
	return lint.Meta{
		Name:     "import-order",
		Doc:      "require the import block to be sorted by path",
		Severity: diag.SevWarning,
		Enabled:  true,
		Kinds:    []syntax.NodeKind{syntax.KindFile},
	}
}

func (importOrder) Enter(ctx *lint.Context, id syntax.NodeID) error {
	tree := ctx.Tree()
	prev := ""
	for _, child := range tree.Children(id) {
		if tree.Kind(child) != syntax.KindImport {
			break
		}
		key := importKey(tree, child)
		if key == "" {
			continue
		}
		if prev != "" && key < prev {
			ctx.Report(diag.Finding{
				Rule:    "import-order",
				Message: fmt.Sprintf("import %s breaks sorted order (after %s)", key, prev),
				Span:    tree.Span(child),
			})
			return nil
		}
		prev = key
	}
	return nil
}

// importKey returns the path text of an import declaration (segments
// joined with "::"), ignoring any alias.
func importKey(tree *syntax.Tree, id syntax.NodeID) string {
	for _, ch := range tree.Children(id) {
		if tree.Kind(ch) != syntax.KindPath {
			continue
		}
		var b strings.Builder
		for _, t := range tree.TokenRange(ch) {
			b.WriteString(t.Text)
		}
		return b.String()
	}
	return ""
}
