package rules

import (
	"fmt"
	"strings"

	"sgstyle/internal/diag"
	"sgstyle/internal/lint"
	"sgstyle/internal/source"
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

// MaxBlankLinesDefault is the longest blank-line run allowed when the
// rule's "max" option is not configured.
const MaxBlankLinesDefault = 1

// maxBlankLines flags runs of consecutive blank lines between the items
// of a file or a block when the run exceeds the configured maximum.
type maxBlankLines struct{}

func (maxBlankLines) Meta() lint.Meta {
	return lint.Meta{
		Name:     "max-blank-lines",
		Doc:      "limit consecutive blank lines between items",
		Severity: diag.SevWarning,
		Enabled:  true,
		Kinds:    []syntax.NodeKind{syntax.KindFile, syntax.KindBlock},
	}
}

func (maxBlankLines) Enter(ctx *lint.Context, id syntax.NodeID) error {
	limit := MaxBlankLinesDefault
	if v, ok, err := ctx.RuleOptions("max-blank-lines").IntOption("max"); err != nil {
		return err
	} else if ok {
		limit = v
	}

	tree := ctx.Tree()
	for _, idx := range blankBoundaries(tree, id) {
		if t := tree.TokenAt(idx); t != nil {
			checkGap(ctx, tree, t.Leading, limit)
		}
	}
	return nil
}

// checkGap ищет в ведущей trivia сегменты из переводов строки. Пробелы
// внутри сегмента не рвут его (пустая строка может нести пробелы),
// комментарий рвёт. Сегмент из k переводов строки несёт k-1 пустых
// строк; спан тянется от первого перевода до последнего, так что
// отступ следующей строки фикс не трогает.
func checkGap(ctx *lint.Context, tree *syntax.Tree, leading []token.Trivia, limit int) {
	var (
		nl   int
		span source.Span
	)
	flush := func() {
		if blanks := nl - 1; nl > 0 && blanks > limit {
			old := ""
			if src := tree.File; src != nil {
				old = string(src.Content[span.Start:span.End])
			}
			f := diag.Finding{
				Rule:    "max-blank-lines",
				Message: fmt.Sprintf("%d consecutive blank lines (limit %d)", blanks, limit),
				Span:    span,
			}
			ctx.Report(f.WithFix(
				"remove extra blank lines",
				diag.TextEdit{Span: span, NewText: strings.Repeat("\n", limit+1), OldText: old},
			))
		}
		nl = 0
	}
	for _, tr := range leading {
		switch tr.Kind {
		case token.TriviaNewline:
			if nl == 0 {
				span = tr.Span
			}
			span.End = tr.Span.End
			nl += len(tr.Text)
		case token.TriviaSpace:
			// остаёмся в сегменте
		default:
			flush()
		}
	}
	flush()
}

// blankBoundaries returns the token indices whose leading trivia can
// hold a blank run inside the node: each child's first token plus the
// token closing the sequence (EOF for a file, '}' for a block).
func blankBoundaries(tree *syntax.Tree, id syntax.NodeID) []uint32 {
	n := tree.Node(id)
	if n == nil {
		return nil
	}
	out := make([]uint32, 0, len(n.Children)+1)
	for _, child := range n.Children {
		if c := tree.Node(child); c != nil && c.FirstTok < c.LastTok {
			out = append(out, c.FirstTok)
		}
	}
	switch n.Kind {
	case syntax.KindFile:
		if len(tree.Tokens) > 0 {
			out = append(out, uint32(len(tree.Tokens)-1))
		}
	case syntax.KindBlock:
		if n.FirstTok < n.LastTok {
			out = append(out, n.LastTok-1)
		}
	}
	return out
}
