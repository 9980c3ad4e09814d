package diag

import (
	"fmt"
	"sort"
	"strings"

	"sgstyle/internal/source"
)

type shortFinding struct {
	Severity string
	Rule     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders findings into a stable, single-line-per-entry
// representation: "severity rule path:line:col message". Used by the CLI
// short format and by tests comparing expected output.
func FormatShort(findings []Finding, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(findings) == 0 {
		return ""
	}

	rendered := make([]shortFinding, 0, len(findings))
	for i := range findings {
		rendered = appendShort(rendered, &findings[i], fs, includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		fi, fj := rendered[i], rendered[j]
		if fi.Path != fj.Path {
			return fi.Path < fj.Path
		}
		if fi.Line != fj.Line {
			return fi.Line < fj.Line
		}
		if fi.Column != fj.Column {
			return fi.Column < fj.Column
		}
		if fi.Severity != fj.Severity {
			return fi.Severity < fj.Severity
		}
		if fi.Rule != fj.Rule {
			return fi.Rule < fj.Rule
		}
		return fi.Message < fj.Message
	})

	var b strings.Builder
	for i, f := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", f.Severity, f.Rule, f.Path, f.Line, f.Column, f.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendShort(out []shortFinding, f *Finding, fs *source.FileSet, includeNotes bool) []shortFinding {
	path, line, col := resolveSpan(fs, f.Span)
	out = append(out, shortFinding{
		Severity: severityLabel(f.Severity),
		Rule:     f.Rule,
		Path:     path,
		Line:     line,
		Column:   col,
		Message:  flattenMessage(f.Message),
	})
	if includeNotes {
		for _, n := range f.Notes {
			if n.Msg == "" {
				continue
			}
			npath, nline, ncol := resolveSpan(fs, n.Span)
			out = append(out, shortFinding{
				Severity: "note",
				Rule:     f.Rule,
				Path:     npath,
				Line:     nline,
				Column:   ncol,
				Message:  flattenMessage(n.Msg),
			})
		}
	}
	return out
}

func resolveSpan(fs *source.FileSet, sp source.Span) (path string, line, col uint32) {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return f.FormatPath("relative", fs.BaseDir()), start.Line, start.Col
}

func severityLabel(s Severity) string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func flattenMessage(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
