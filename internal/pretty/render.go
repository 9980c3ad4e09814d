package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"sgstyle/internal/style"
)

// Options configure one rendering pass.
type Options struct {
	MaxWidth int
	Indent   style.Indent
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = style.DefaultMaxWidth
	}
	if o.Indent.Width <= 0 {
		o.Indent.Width = style.DefaultIndentWidth
	}
	return o
}

// Render lays out the document and returns the text.
func Render(doc *Doc, opts Options) string {
	text, _ := RenderWithReport(doc, opts)
	return text
}

// RenderWithReport additionally returns the per-group decision trace.
// Output is deterministic: the same document and options always produce
// byte-identical text and an identical report.
func RenderWithReport(doc *Doc, opts Options) (string, *Report) {
	r := &renderer{
		opts:   opts.withDefaults(),
		buf:    make([]byte, 0, 256),
		report: &Report{},
	}
	if doc != nil {
		r.render(doc, false)
	}
	return string(r.buf), r.report
}

// renderer держит единственное глобальное состояние раскладки: колонку,
// стек отступов и буфер. Всё остальное решается локально в группах.
type renderer struct {
	opts         Options
	buf          []byte
	col          int
	indentLevel  int
	pendingLevel int
	atLineStart  bool
	report       *Report
	nextID       int
}

// render walks the document; flat is inherited from the closest decided
// group.
func (r *renderer) render(d *Doc, flat bool) {
	switch d.kind {
	case docText:
		r.writeText(d.text, d.flatWidth)
	case docRaw:
		r.writeRaw(d.text)
	case docBreak:
		if flat {
			switch d.brk {
			case BreakSpace:
				r.writeText(" ", 1)
				return
			case BreakNothing:
				return
			}
			// жёсткий перенос внутри плоской группы невозможен по построению
		}
		r.newline(d.brk == BreakBlank)
	case docGroup:
		childFlat := flat
		if flat {
			r.trace(d, DecisionFlat, ReasonInherited)
		} else {
			childFlat = r.decide(d)
		}
		for _, c := range d.children {
			r.render(c, childFlat)
		}
	case docIndent:
		r.indentLevel += d.delta
		for _, c := range d.children {
			r.render(c, flat)
		}
		r.indentLevel -= d.delta
	case docConcat:
		for _, c := range d.children {
			r.render(c, flat)
		}
	}
}

// decide picks flat or broken for a group reached in broken context.
// Ties at the width limit stay flat.
func (r *renderer) decide(d *Doc) (flat bool) {
	switch {
	case d.forced:
		r.trace(d, DecisionBroken, ReasonForced)
		return false
	case d.hard:
		r.trace(d, DecisionBroken, ReasonHard)
		return false
	case r.col+d.flatWidth > r.opts.MaxWidth:
		r.trace(d, DecisionBroken, ReasonWidth)
		return false
	default:
		r.trace(d, DecisionFlat, ReasonFits)
		return true
	}
}

func (r *renderer) trace(d *Doc, dec Decision, reason Reason) {
	r.nextID++
	r.report.Groups = append(r.report.Groups, GroupTrace{
		ID:        r.nextID,
		Decision:  dec,
		Reason:    reason,
		Column:    r.col,
		FlatWidth: d.FlatWidth(),
	})
}

func (r *renderer) writeText(s string, width int) {
	if s == "" {
		return
	}
	r.writeIndent()
	r.buf = append(r.buf, s...)
	r.col += width
}

func (r *renderer) writeRaw(s string) {
	if s == "" {
		return
	}
	r.writeIndent()
	r.buf = append(r.buf, s...)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		r.col = runewidth.StringWidth(s[i+1:])
	} else {
		r.col += runewidth.StringWidth(s)
	}
}

// writeIndent пишет отложенный отступ; уровень зафиксирован переносом.
func (r *renderer) writeIndent() {
	if !r.atLineStart {
		return
	}
	if r.opts.Indent.Tabs {
		for range r.pendingLevel {
			r.buf = append(r.buf, '\t')
		}
	} else {
		spaceCount := r.pendingLevel * r.opts.Indent.Width
		for range spaceCount {
			r.buf = append(r.buf, ' ')
		}
	}
	r.atLineStart = false
}

// newline завершает строку. Отступ пишется лениво при следующем тексте,
// поэтому пустые строки не несут хвостовых пробелов.
func (r *renderer) newline(blank bool) {
	r.buf = append(r.buf, '\n')
	if blank {
		r.buf = append(r.buf, '\n')
	}
	r.atLineStart = true
	r.pendingLevel = r.indentLevel
	r.col = r.pendingLevel * r.opts.Indent.Width
}
