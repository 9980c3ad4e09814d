package diagfmt

import (
	"encoding/json"
	"io"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// EditJSON представляет одно редактирование для JSON
type EditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

// FixJSON представляет предложение по исправлению для JSON
type FixJSON struct {
	Title string     `json:"title"`
	Edits []EditJSON `json:"edits,omitempty"`
}

// FindingJSON представляет находку в JSON формате
type FindingJSON struct {
	Severity string       `json:"severity"`
	Rule     string       `json:"rule"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fix      *FixJSON     `json:"fix,omitempty"`
}

// FindingsOutput представляет корневую структуру JSON вывода
type FindingsOutput struct {
	Findings []FindingJSON `json:"findings"`
	Count    int           `json:"count"`
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	loc := LocationJSON{
		File:      displayPath(fs.Get(span.File), pathMode, fs.BaseDir()),
		StartByte: span.Start,
		EndByte:   span.End,
	}

	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}

	return loc
}

// BuildFindingsOutput формирует структуру JSON-вывода без сериализации.
func BuildFindingsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) FindingsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	findings := make([]FindingJSON, 0, maxItems)
	for i := range maxItems {
		f := items[i]

		out := FindingJSON{
			Severity: f.Severity.String(),
			Rule:     f.Rule,
			Message:  f.Message,
			Location: makeLocation(f.Span, fs, opts.PathMode, opts.IncludePositions),
		}

		if opts.IncludeNotes && len(f.Notes) > 0 {
			out.Notes = make([]NoteJSON, len(f.Notes))
			for j, note := range f.Notes {
				out.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}

		if opts.IncludeFixes && f.Fix != nil {
			fix := &FixJSON{Title: f.Fix.Title}
			fix.Edits = make([]EditJSON, len(f.Fix.Edits))
			for k, edit := range f.Fix.Edits {
				editJSON := EditJSON{
					Location: makeLocation(edit.Span, fs, opts.PathMode, opts.IncludePositions),
					NewText:  edit.NewText,
					OldText:  edit.OldText,
				}
				if opts.IncludePreviews {
					if preview, err := buildEditPreview(fs, edit); err == nil {
						editJSON.BeforeLines = append([]string(nil), preview.before...)
						editJSON.AfterLines = append([]string(nil), preview.after...)
					}
				}
				fix.Edits[k] = editJSON
			}
			out.Fix = fix
		}

		findings = append(findings, out)
	}

	return FindingsOutput{
		Findings: findings,
		Count:    len(findings),
	}
}

// JSON форматирует находки в JSON формат.
// Выводит массив находок с полной информацией о местоположении, заметках
// и исправлениях.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildFindingsOutput(bag, fs, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
