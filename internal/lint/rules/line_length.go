package rules

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"sgstyle/internal/diag"
	"sgstyle/internal/lint"
	"sgstyle/internal/style"
	"sgstyle/internal/syntax"
)

// lineLength flags source lines wider than the configured maximum.
// Ширина меряется в экранных колонках: CJK и эмодзи считаются за две.
type lineLength struct{}

func (lineLength) Meta() lint.Meta {
	return lint.Meta{
		Name:     "line-length",
		Doc:      "flag lines wider than the configured maximum",
		Severity: diag.SevWarning,
		Enabled:  true,
		Kinds:    []syntax.NodeKind{syntax.KindFile},
	}
}

func (lineLength) Enter(ctx *lint.Context, id syntax.NodeID) error {
	file, ok := ctx.SourceFile()
	if !ok {
		// без исходника мерить нечего
		return nil
	}
	limit := ctx.Config().MaxWidth
	if v, ok, err := ctx.RuleOptions("line-length").IntOption("max"); err != nil {
		return err
	} else if ok {
		limit = v
	}
	tab := ctx.Config().Indent.Width
	if tab <= 0 {
		tab = style.DefaultIndentWidth
	}

	for ln := uint32(1); ln <= file.NumLines(); ln++ {
		w := displayWidth(file.GetLine(ln), tab)
		if w <= limit {
			continue
		}
		ctx.Report(diag.Finding{
			Rule:    "line-length",
			Message: fmt.Sprintf("line is %d columns wide (limit %d)", w, limit),
			Span:    file.LineSpan(ln),
		})
	}
	return nil
}

// displayWidth returns the on-screen width of one line, expanding tabs
// to the next tab stop.
func displayWidth(line string, tab int) int {
	w := 0
	for _, r := range line {
		if r == '\t' {
			w += tab - w%tab
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}
