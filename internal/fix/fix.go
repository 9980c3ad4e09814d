// Package fix applies suggested fixes from findings to files on disk.
//
// Назначение: отбор фиксов, детерминированный порядок, защита OldText,
// атомарность на фикс (все его правки или ни одной), запись на диск.
// Не делает: выбора, какие находки чинить; это политика вызывающего.
// Зависимости: internal/diag, internal/source.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
)

// ErrNoFixes is returned when nothing was applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Options configures fix selection.
type Options struct {
	// Rules limits application to findings of the listed rules; empty
	// means all rules.
	Rules []string
	// DryRun stages every change but writes nothing to disk.
	DryRun bool
}

// Applied records one successfully applied fix.
type Applied struct {
	Rule      string
	Title     string
	Message   string
	Path      string
	EditCount int
}

// Skipped captures a fix that could not be applied, with a reason.
type Skipped struct {
	Rule   string
	Title  string
	Reason string
}

// FileChange summarises the modifications performed on one file.
// Content carries the final bytes, so dry runs can show the result.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte
}

// Result aggregates applied fixes, skipped ones, and file changes.
type Result struct {
	Applied     []Applied
	Skipped     []Skipped
	FileChanges []FileChange
}

// candidate — один фикс в детерминированном порядке применения.
type candidate struct {
	finding diag.Finding
	order   int
}

// acceptedEdit привязывает правку к порядку принятия: правки одной
// позиции применяются так, чтобы более ранний фикс оказался левее.
type acceptedEdit struct {
	diag.TextEdit
	order int
}

// Apply collects fixes from findings, orders them deterministically,
// and applies every fix whose edits pass the bounds, OldText, and
// overlap checks. A fix conflicting with an earlier accepted fix is
// skipped whole. Edits address original file coordinates; they are
// spliced back to front, so accepted spans never shift.
func Apply(fs *source.FileSet, findings []diag.Finding, opts Options) (*Result, error) {
	result := &Result{
		Applied:     make([]Applied, 0),
		Skipped:     make([]Skipped, 0),
		FileChanges: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	cands, gatherSkips := gather(findings, opts)
	result.Skipped = append(result.Skipped, gatherSkips...)
	if len(cands) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(cands)

	accepted := make(map[source.FileID][]acceptedEdit)
	counts := make(map[source.FileID]int)

	for _, cand := range cands {
		f := cand.finding
		if reason := stage(fs, accepted, f.Fix.Edits, opts.DryRun); reason != "" {
			result.Skipped = append(result.Skipped, Skipped{
				Rule:   f.Rule,
				Title:  f.Fix.Title,
				Reason: reason,
			})
			continue
		}
		for _, e := range f.Fix.Edits {
			accepted[e.Span.File] = append(accepted[e.Span.File], acceptedEdit{TextEdit: e, order: cand.order})
			counts[e.Span.File]++
		}
		result.Applied = append(result.Applied, Applied{
			Rule:      f.Rule,
			Title:     f.Fix.Title,
			Message:   f.Message,
			Path:      displayPath(fs, f.Span.File),
			EditCount: len(f.Fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	for fileID, edits := range accepted {
		file := fs.Get(fileID)
		content := splice(file.Content, edits)
		if !opts.DryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(file.Path, content, mode); err != nil {
				return result, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: counts[fileID],
			Content:   content,
		})
	}
	sort.Slice(result.FileChanges, func(i, j int) bool {
		return result.FileChanges[i].Path < result.FileChanges[j].Path
	})
	return result, nil
}

// gather filters findings down to applicable fix candidates.
func gather(findings []diag.Finding, opts Options) ([]candidate, []Skipped) {
	var cands []candidate
	var skips []Skipped
	for _, f := range findings {
		if f.Fix == nil {
			continue
		}
		if len(opts.Rules) > 0 && !contains(opts.Rules, f.Rule) {
			continue
		}
		if len(f.Fix.Edits) == 0 {
			skips = append(skips, Skipped{Rule: f.Rule, Title: f.Fix.Title, Reason: "fix has no edits"})
			continue
		}
		cands = append(cands, candidate{finding: f, order: len(cands)})
	}
	return cands, skips
}

// sortCandidates orders fixes by file, span, insertion order, rule, and
// title, so the applied set never depends on sink ordering.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		fi, fj := cands[i].finding, cands[j].finding
		if fi.Span.File != fj.Span.File {
			return fi.Span.File < fj.Span.File
		}
		if fi.Span.Start != fj.Span.Start {
			return fi.Span.Start < fj.Span.Start
		}
		if fi.Span.End != fj.Span.End {
			return fi.Span.End < fj.Span.End
		}
		if cands[i].order != cands[j].order {
			return cands[i].order < cands[j].order
		}
		if fi.Rule != fj.Rule {
			return fi.Rule < fj.Rule
		}
		return fi.Fix.Title < fj.Fix.Title
	})
}

// stage verifies every edit of one fix against the target files and the
// edits accepted so far. An empty string means the fix is applicable.
// Виртуальные файлы проходят только в сухом прогоне: писать их некуда.
func stage(fs *source.FileSet, accepted map[source.FileID][]acceptedEdit, edits []diag.TextEdit, dryRun bool) string {
	for _, e := range edits {
		file := fs.Get(e.Span.File)
		if file == nil {
			return "target file is not loaded"
		}
		if !dryRun && file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		if e.Span.Start > e.Span.End || int(e.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		if e.OldText != "" && string(file.Content[e.Span.Start:e.Span.End]) != e.OldText {
			return "existing text does not match expected content"
		}
		for _, prev := range accepted[e.Span.File] {
			if spansConflict(prev.TextEdit, e) {
				return fmt.Sprintf("conflicts with an earlier fix in %s", displayPath(fs, e.Span.File))
			}
		}
	}
	return ""
}

// splice applies non-overlapping edits back to front.
func splice(content []byte, edits []acceptedEdit) []byte {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Span.Start != edits[j].Span.Start {
			return edits[i].Span.Start > edits[j].Span.Start
		}
		if edits[i].Span.End != edits[j].Span.End {
			return edits[i].Span.End > edits[j].Span.End
		}
		return edits[i].order > edits[j].order
	})
	out := append([]byte(nil), content...)
	for _, e := range edits {
		tail := append([]byte(nil), out[e.Span.End:]...)
		out = append(append(out[:e.Span.Start], []byte(e.NewText)...), tail...)
	}
	return out
}

// spansConflict reports whether two edits' spans overlap. Spans are
// half-open. Two zero-length edits never conflict; a zero-length edit
// conflicts with a span containing its position.
func spansConflict(a, b diag.TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

func displayPath(fs *source.FileSet, id source.FileID) string {
	file := fs.Get(id)
	if file == nil {
		return ""
	}
	return file.FormatPath("auto", fs.BaseDir())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
