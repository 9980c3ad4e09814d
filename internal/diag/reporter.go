package diag

import "sgstyle/internal/source"

// Reporter — минимальный контракт получения findings от фаз.
// Реализации: *Bag (копит в себе), ReporterFunc, *DedupReporter.
type Reporter interface {
	Report(f Finding)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(Finding)

func (fn ReporterFunc) Report(f Finding) { fn(f) }

// Builder accumulates finding details before emitting to a Reporter.
type Builder struct {
	reporter Reporter
	finding  Finding
	emitted  bool
}

// NewBuilder constructs a builder bound to Reporter.
func NewBuilder(r Reporter, f Finding) *Builder {
	return &Builder{reporter: r, finding: f}
}

// WithNote appends a note to the finding.
func (b *Builder) WithNote(sp source.Span, msg string) *Builder {
	if b == nil {
		return nil
	}
	b.finding.Notes = append(b.finding.Notes, Note{Span: sp, Msg: msg})
	return b
}

// WithFix attaches a fix to the finding.
func (b *Builder) WithFix(title string, edits ...TextEdit) *Builder {
	if b == nil {
		return nil
	}
	b.finding.Fix = &Fix{Title: title, Edits: edits}
	return b
}

// Emit sends the finding to the underlying reporter exactly once.
func (b *Builder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.finding)
	}
	b.emitted = true
}

// Finding returns the accumulated finding without emitting.
func (b *Builder) Finding() Finding {
	if b == nil {
		return Finding{}
	}
	return b.finding
}
