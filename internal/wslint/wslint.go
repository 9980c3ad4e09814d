// Package wslint flags whitespace-only deviations from canonical
// layout. It renders the tree in whitespace-only mode and walks the
// source and the rendering token-synchronously: solid text (tokens and
// comments) is equal by construction, so only the gaps between solid
// pieces are compared.
//
// Назначение: находки категории whitespace с точными спанами и
// автофиксами; одна находка на расходящийся пробельный прогон.
// Не делает: общего дифа текста и повторного прогона правил.
// Зависимости: internal/format, internal/lint, internal/diag.
package wslint

import (
	"fmt"
	"strings"

	"sgstyle/internal/diag"
	"sgstyle/internal/format"
	"sgstyle/internal/lint"
	"sgstyle/internal/source"
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

// Run compares the original source against the whitespace-only
// rendering of the same tree and reports one finding per differing
// whitespace run. Without source text, or with the whitespace category
// disabled, it does nothing. A tree with error nodes aborts the pass.
func Run(ctx *lint.Context) error {
	file, ok := ctx.SourceFile()
	if !ok {
		return nil
	}
	if !ctx.Enabled(diag.RuleWhitespace) {
		return nil
	}
	rendered, err := format.WhitespaceOnly(ctx.Tree(), ctx.Config())
	if err != nil {
		return err
	}
	return diff(ctx, file, string(file.Content), rendered)
}

// elem — неделимый кусок текста: токен или комментарий. Спан указывает
// в исходник.
type elem struct {
	text string
	span source.Span
}

// solidElems returns the file's solid pieces in source order: leading
// comments first, then the token itself. EOF carries no text.
func solidElems(tree *syntax.Tree) []elem {
	var out []elem
	for i := range tree.Tokens {
		t := &tree.Tokens[i]
		for _, tr := range t.Leading {
			if tr.IsComment() {
				out = append(out, elem{text: tr.Text, span: tr.Span})
			}
		}
		if t.Kind != token.EOF {
			out = append(out, elem{text: t.Text, span: t.Span})
		}
	}
	return out
}

// diff идёт двумя курсорами по исходнику и отрисовке. Между двумя
// соседними кусками в исходнике лежат только пробелы, поэтому сравнение
// прогонов линейно по байтам.
func diff(ctx *lint.Context, file *source.File, orig, rendered string) error {
	elems := solidElems(ctx.Tree())
	oPos, rPos := 0, 0
	for k := 0; ; k++ {
		oEnd := len(orig)
		rEnd := len(rendered)
		if k < len(elems) {
			oEnd = int(elems[k].span.Start)
			rEnd = rPos
			for rEnd < len(rendered) && isWS(rendered[rEnd]) {
				rEnd++
			}
		}
		got := orig[oPos:oEnd]
		want := rendered[rPos:rEnd]
		if got != want {
			report(ctx, file, uint32(oPos), got, want, k == len(elems))
		}
		if k == len(elems) {
			return nil
		}
		e := elems[k]
		if !strings.HasPrefix(rendered[rEnd:], e.text) {
			return fmt.Errorf("wslint: rendering of %s out of sync at byte %d", file.Path, rEnd)
		}
		oPos = int(e.span.End)
		rPos = rEnd + len(e.text)
	}
}

// report trims the common prefix and suffix of the two runs and emits
// one finding covering the differing middle of the original run. The
// fix replaces that middle with the canonical middle.
func report(ctx *lint.Context, file *source.File, gapStart uint32, got, want string, atEOF bool) {
	p := commonPrefix(got, want)
	s := commonSuffix(got[p:], want[p:])
	gotMid := got[p : len(got)-s]
	wantMid := want[p : len(want)-s]
	sp := source.Span{
		File:  file.ID,
		Start: gapStart + uint32(p),
		End:   gapStart + uint32(len(got)-s),
	}
	f := diag.Finding{
		Rule:    diag.RuleWhitespace,
		Message: classify(got, want, gotMid, wantMid, got[len(got)-s:], atEOF),
		Span:    sp,
	}
	ctx.Report(f.WithFix("use canonical spacing",
		diag.TextEdit{Span: sp, NewText: wantMid, OldText: gotMid}))
}

// classify names the discrepancy. Переводы строк считаются по полным
// прогонам, приговор по их расходящейся середине.
func classify(got, want, gotMid, wantMid, tail string, atEOF bool) string {
	gotNL := strings.Count(got, "\n")
	wantNL := strings.Count(want, "\n")
	switch {
	case gotNL == wantNL && gotNL == 0:
		switch {
		case gotMid == "":
			return "missing space"
		case wantMid == "":
			return "extra space"
		default:
			return "wrong spacing"
		}
	case gotNL == wantNL:
		if wantMid == "" && isBlank(gotMid) && (strings.HasPrefix(tail, "\n") || atEOF) {
			return "trailing whitespace"
		}
		return "wrong indentation"
	case gotNL < wantNL:
		if gotNL == 0 && wantNL == 1 {
			return "missing line break"
		}
		return "missing blank line"
	default:
		if gotNL-wantNL == 1 && wantNL == 0 {
			return "extra line break"
		}
		return "extra blank line"
	}
}

func isWS(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

// isBlank reports whether s is spaces and tabs only.
func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
