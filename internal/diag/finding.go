package diag

import (
	"sgstyle/internal/source"
)

// Reserved rule names. Front-end errors and whitespace-linter findings are
// configured like rules but produced outside the rule pipeline.
const (
	RuleSyntax     = "syntax"
	RuleWhitespace = "whitespace"
)

type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is a single span replacement. OldText, when non-empty, must match
// the current content of Span for the edit to be applied.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

type Fix struct {
	Title string
	Edits []TextEdit
}

// Finding is one style violation. Immutable once emitted.
type Finding struct {
	Rule     string
	Severity Severity
	Message  string
	Span     source.Span
	Notes    []Note
	Fix      *Fix
}

// WithNote returns a copy of the finding with an extra note appended.
func (f Finding) WithNote(sp source.Span, msg string) Finding {
	notes := make([]Note, 0, len(f.Notes)+1)
	notes = append(notes, f.Notes...)
	notes = append(notes, Note{Span: sp, Msg: msg})
	f.Notes = notes
	return f
}

// WithFix returns a copy of the finding carrying the given fix.
func (f Finding) WithFix(title string, edits ...TextEdit) Finding {
	f.Fix = &Fix{Title: title, Edits: edits}
	return f
}
