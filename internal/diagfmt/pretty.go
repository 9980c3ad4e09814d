package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
)

// Pretty форматирует находки в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой находки печатает:
// <path>:<line>:<col>: <SEV> <rule>: <message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и фиксы
// с аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	items := bag.Items()
	for i := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyFinding(w, &items[i], fs, opts, p)
	}
}

func prettyFinding(w io.Writer, f *diag.Finding, fs *source.FileSet, opts PrettyOpts, p *palette) {
	file := fs.Get(f.Span.File)
	start, _ := fs.Resolve(f.Span)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", displayPath(file, opts.PathMode, fs.BaseDir()), start.Line, start.Col),
		p.severity(f.Severity).Sprint(f.Severity.String()),
		p.rule.Sprint(f.Rule),
		f.Message)

	if opts.Context >= 0 {
		writeSourceBlock(w, file, f, start, int(opts.Context), p)
	}

	if opts.ShowNotes {
		for _, n := range f.Notes {
			nFile := fs.Get(n.Span.File)
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d %s\n",
				displayPath(nFile, opts.PathMode, fs.BaseDir()), nStart.Line, nStart.Col, n.Msg)
		}
	}

	if opts.ShowFixes && f.Fix != nil {
		writeFix(w, f.Fix, fs, opts)
	}
}

// writeSourceBlock печатает подчёркнутую строку с номером и, при
// Context > 0, соседние строки вокруг неё.
func writeSourceBlock(w io.Writer, file *source.File, f *diag.Finding, start source.LineCol, context int, p *palette) {
	first, last := start.Line, start.Line
	if context > 0 {
		ctx, err := safecast.Conv[uint32](context)
		if err != nil {
			ctx = 0
		}
		if ctx >= first {
			first = 1
		} else {
			first -= ctx
		}
		last += ctx
		if n := file.NumLines(); last > n {
			last = n
		}
	}

	gutter := len(fmt.Sprintf("%d", last))
	for ln := first; ln <= last; ln++ {
		text := file.GetLine(ln)
		fmt.Fprintf(w, " %s | %s\n", p.gutter.Sprintf("%*d", gutter, ln), text)
		if ln == start.Line {
			pad, caret := caretLine(text, start.Col, f.Span.End-f.Span.Start)
			fmt.Fprintf(w, " %s | %s%s\n",
				strings.Repeat(" ", gutter), pad, p.severity(f.Severity).Sprint(caret))
		}
	}
}

// caretLine строит отступ и подчёркивание для строки text: отступ
// повторяет табы исходной строки, чтобы каретка не уезжала, длина
// подчёркивания ограничена концом строки.
func caretLine(text string, col, spanLen uint32) (pad, caret string) {
	pos := int(col) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}

	var b strings.Builder
	for i := range pos {
		if text[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}

	n := int(spanLen)
	if rest := len(text) - pos; n > rest {
		n = rest
	}
	if n < 1 {
		n = 1
	}
	return b.String(), "^" + strings.Repeat("~", n-1)
}

func writeFix(w io.Writer, fix *diag.Fix, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "  fix: %s\n", fix.Title)
	for _, edit := range fix.Edits {
		start, _ := fs.Resolve(edit.Span)
		fmt.Fprintf(w, "    apply=%q at %d:%d\n", edit.NewText, start.Line, start.Col)
		if !opts.ShowPreview {
			continue
		}
		preview, err := buildEditPreview(fs, edit)
		if err != nil {
			continue
		}
		fmt.Fprintln(w, "    preview:")
		for _, line := range preview.before {
			fmt.Fprintf(w, "    - %s\n", line)
		}
		for _, line := range preview.after {
			fmt.Fprintf(w, "    + %s\n", line)
		}
	}
}

// displayPath форматирует путь файла согласно режиму отображения.
func displayPath(f *source.File, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", baseDir)
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		return f.FormatPath("auto", "")
	default:
		return f.Path
	}
}

type palette struct {
	severities map[diag.Severity]*color.Color
	path       *color.Color
	rule       *color.Color
	gutter     *color.Color
}

// newPalette строит набор цветов; enabled=false принудительно отключает
// цвет независимо от глобального определения TTY в fatih/color.
func newPalette(enabled bool) *palette {
	p := &palette{
		severities: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		path:   color.New(color.Bold),
		rule:   color.New(color.FgMagenta),
		gutter: color.New(color.FgBlue),
	}
	all := []*color.Color{p.path, p.rule, p.gutter}
	for _, c := range p.severities {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) severity(sev diag.Severity) *color.Color {
	if c, ok := p.severities[sev]; ok {
		return c
	}
	return p.path
}
