package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"fortio.org/safecast"

	"sgstyle/internal/diag"
	"sgstyle/internal/format"
	"sgstyle/internal/observ"
	"sgstyle/internal/parser"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
	"sgstyle/internal/syntax"
)

// FormatOptions configures a formatting run.
type FormatOptions struct {
	Config style.Config

	// MaxFindings caps parse diagnostics per file. 0 means 256.
	MaxFindings int

	// Jobs bounds file-level parallelism. 0 means GOMAXPROCS.
	Jobs int

	// BaseDir anchors relative path rendering.
	BaseDir string

	// Check reports which files would change without writing them.
	Check bool

	// Stdout keeps the formatted text in the result instead of
	// writing it back to disk.
	Stdout bool

	Progress ProgressSink
	Timings  bool
}

func (o FormatOptions) withDefaults() FormatOptions {
	if o.MaxFindings <= 0 {
		o.MaxFindings = 256
	}
	if o.BaseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			o.BaseDir = wd
		}
	}
	return o
}

// FormatResult is the per-file outcome of FormatPaths.
type FormatResult struct {
	Path    string
	Changed bool

	// Formatted holds the rendered text when FormatOptions.Stdout is
	// set; nil otherwise.
	Formatted []byte

	// Err is set for unreadable files, syntax errors and round-trip
	// mismatches. A file with Err set was not modified.
	Err error
}

// FormatRun is the aggregate outcome of FormatPaths.
type FormatRun struct {
	// Results follows the sorted order of the collected paths.
	Results []FormatResult

	Timing observ.Report
}

// ChangedCount counts files that differ from their formatted form.
func (r *FormatRun) ChangedCount() int {
	var n int
	for i := range r.Results {
		if r.Results[i].Changed {
			n++
		}
	}
	return n
}

// FirstErr returns the first per-file error in path order, or nil.
func (r *FormatRun) FirstErr() error {
	for i := range r.Results {
		if r.Results[i].Err != nil {
			return r.Results[i].Err
		}
	}
	return nil
}

// FormatPaths renders every source file reachable from paths through
// the layout engine. Files with syntax errors are reported and left
// untouched. Перед записью выполняется обратная проверка: итоговый
// текст обязан парситься и сохранять состав верхнего уровня.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*FormatRun, error) {
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no source files found")
	}
	opts = opts.withDefaults()

	fileSet := source.NewFileSet()
	fileSet.SetBaseDir(opts.BaseDir)

	loadTimer := observ.NewTimer()
	loadIdx := -1
	if opts.Timings {
		loadIdx = loadTimer.Begin(observ.PhaseLoad)
	}
	ids := make(map[string]source.FileID, len(files))
	loadErrs := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrs[path] = err
			continue
		}
		ids[path] = id
	}
	loadTimer.End(loadIdx, fmt.Sprintf("files=%d", len(files)))

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusQueued})
	}

	results := make([]FormatResult, len(files))
	timings := make([]observ.Report, len(files))

	runErr := runFiles(ctx, len(files), opts.Jobs, func(gctx context.Context, i int) error {
		path := files[i]
		started := time.Now()
		if loadErr, bad := loadErrs[path]; bad {
			results[i] = FormatResult{Path: path, Err: loadErr}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: loadErr})
			return nil
		}
		res, timing := formatFile(fileSet, ids[path], path, opts)
		results[i] = res
		timings[i] = timing
		evt := Event{File: path, Stage: StageLayout, Status: StatusDone, Elapsed: time.Since(started)}
		if res.Err != nil {
			evt.Status, evt.Err = StatusError, res.Err
		}
		emit(opts.Progress, evt)
		return nil
	})

	merged := make([]observ.Report, 0, len(timings)+1)
	merged = append(merged, loadTimer.Report())
	merged = append(merged, timings...)

	return &FormatRun{
		Results: results,
		Timing:  observ.Merge(merged...),
	}, runErr
}

func formatFile(fileSet *source.FileSet, id source.FileID, path string, opts FormatOptions) (FormatResult, observ.Report) {
	file := fileSet.Get(id)
	res := FormatResult{Path: path}

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer != nil {
			timer.End(idx, note)
		}
	}
	report := func() observ.Report {
		if timer == nil {
			return observ.Report{}
		}
		return timer.Report()
	}

	maxErrs, convErr := safecast.Conv[uint](opts.MaxFindings)
	if convErr != nil {
		maxErrs = 0
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	idx := begin(observ.PhaseParse)
	bag := diag.NewBag(opts.MaxFindings)
	tree := parser.Parse(file, parser.Options{MaxErrors: maxErrs, Reporter: bag})
	end(idx, "")
	if bag.HasErrors() {
		res.Err = fmt.Errorf("%s: syntax errors, not formatted", path)
		return res, report()
	}

	emit(opts.Progress, Event{File: path, Stage: StageLayout, Status: StatusWorking})
	idx = begin(observ.PhaseLayout)
	formatted, err := format.File(tree, opts.Config)
	end(idx, fmt.Sprintf("bytes=%d", len(formatted)))
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res, report()
	}

	res.Changed = formatted != string(file.Content)
	if res.Changed {
		if err := verifyRoundTrip(path, tree, formatted); err != nil {
			res.Err = err
			res.Changed = false
			return res, report()
		}
	}

	switch {
	case opts.Check:
		// Только отчёт, на диск не пишем.
	case opts.Stdout:
		res.Formatted = []byte(formatted)
	case res.Changed:
		if err := writeInPlace(path, []byte(formatted)); err != nil {
			res.Err = err
			return res, report()
		}
	}
	return res, report()
}

// verifyRoundTrip reparses the formatted text and compares the
// top-level item kinds against the original tree. Несовпадение
// означает баг рендера; такой файл на диск не попадает.
func verifyRoundTrip(path string, orig *syntax.Tree, formatted string) error {
	check := source.NewFileSet()
	file := check.Get(check.AddVirtual(path, []byte(formatted)))
	bag := diag.NewBag(8)
	reparsed := parser.Parse(file, parser.Options{MaxErrors: 8, Reporter: bag})
	if bag.HasErrors() {
		return fmt.Errorf("%s: formatted output does not parse, refusing to write", path)
	}
	before := topLevelKinds(orig)
	after := topLevelKinds(reparsed)
	if len(before) != len(after) {
		return fmt.Errorf("%s: formatting changed item count (%d -> %d), refusing to write", path, len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			return fmt.Errorf("%s: formatting changed item %d (%v -> %v), refusing to write", path, i, before[i], after[i])
		}
	}
	return nil
}

func topLevelKinds(t *syntax.Tree) []syntax.NodeKind {
	children := t.Children(t.Root)
	kinds := make([]syntax.NodeKind, 0, len(children))
	for _, id := range children {
		kinds = append(kinds, t.Kind(id))
	}
	return kinds
}

// writeInPlace replaces the file contents keeping its permissions.
func writeInPlace(path string, content []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
