package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"fortio.org/safecast"

	"sgstyle/internal/diag"
	"sgstyle/internal/lint"
	"sgstyle/internal/observ"
	"sgstyle/internal/parser"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
	"sgstyle/internal/syntax"
	"sgstyle/internal/wslint"
)

// Options configures a check run. The zero value is usable: defaults
// are filled in by CheckPaths.
type Options struct {
	// Config is the effective style configuration for every file in
	// the run. Per-directory lookup happens in the CLI layer, not here.
	Config style.Config

	// MaxFindings caps the per-file diagnostic bag. 0 means the
	// default cap (256).
	MaxFindings int

	// Jobs bounds file-level parallelism. 0 means GOMAXPROCS.
	Jobs int

	// BaseDir anchors relative path rendering. Empty means the
	// current working directory.
	BaseDir string

	// ToolVersion participates in cache keys so that results produced
	// by one build are never served to another. Empty means "dev".
	ToolVersion string

	// Cache, when non-nil, short-circuits analysis for files whose
	// content and configuration hashes match a stored entry.
	Cache *DiskCache

	// Progress, when non-nil, receives stage events for every file.
	Progress ProgressSink

	// Registry supplies the rule set. Nil means lint.Default().
	Registry *lint.Registry

	// Timings enables per-phase timers on file reports.
	Timings bool
}

func (o Options) withDefaults() Options {
	if o.MaxFindings <= 0 {
		o.MaxFindings = 256
	}
	if o.ToolVersion == "" {
		o.ToolVersion = "dev"
	}
	if o.BaseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			o.BaseDir = wd
		}
	}
	return o
}

// FileReport holds the outcome of checking a single file.
type FileReport struct {
	Path   string
	FileID source.FileID

	// Bag holds the findings for this file, or nil when the file
	// could not be loaded.
	Bag *diag.Bag

	// Failures lists rules that panicked or returned an error during
	// this pass. The rest of the pass still completed.
	Failures []lint.RuleFailure

	// Cached is true when findings were served from the disk cache
	// without re-analysing the file.
	Cached bool

	// Err is set for infrastructure problems: unreadable file or a
	// renderer desync. Analysis findings never land here.
	Err error

	Timing observ.Report
}

// CheckResult is the aggregate outcome of CheckPaths.
type CheckResult struct {
	FileSet *source.FileSet

	// Files follows the sorted order of the collected paths.
	Files []FileReport

	// Bag merges every file's findings in file order, then sorts.
	Bag *diag.Bag

	// Timing sums per-phase durations across files. Phases from
	// parallel workers overlap, so the total can exceed wall time.
	Timing observ.Report
}

// TotalFailures counts isolated rule failures across all files.
func (r *CheckResult) TotalFailures() int {
	var n int
	for i := range r.Files {
		n += len(r.Files[i].Failures)
	}
	return n
}

// ErrCount counts error-severity findings in the merged bag.
func (r *CheckResult) ErrCount() int {
	var n int
	for _, f := range r.Bag.Items() {
		if f.Severity == diag.SevError {
			n++
		}
	}
	return n
}

// CheckPaths runs the full diagnostic pipeline (parse, lint,
// whitespace diff) over every source file reachable from paths.
// Файлы обрабатываются параллельно; итоговый мешок отсортирован и
// детерминирован независимо от порядка завершения воркеров.
func CheckPaths(ctx context.Context, paths []string, opts Options) (*CheckResult, error) {
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no source files found")
	}
	opts = opts.withDefaults()

	fs := source.NewFileSet()
	fs.SetBaseDir(opts.BaseDir)

	// Загрузка последовательная: FileSet растёт под одним замком, а
	// дисковый ввод здесь не узкое место.
	loadTimer := observ.NewTimer()
	loadIdx := -1
	if opts.Timings {
		loadIdx = loadTimer.Begin(observ.PhaseLoad)
	}
	ids := make(map[string]source.FileID, len(files))
	loadErrs := make(map[string]error)
	for _, path := range files {
		id, err := fs.Load(path)
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

	cfgHash := style.Hash(opts.Config)
	reports := make([]FileReport, len(files))

	runErr := runFiles(ctx, len(files), opts.Jobs, func(gctx context.Context, i int) error {
		path := files[i]
		started := time.Now()
		if loadErr, bad := loadErrs[path]; bad {
			reports[i] = FileReport{Path: path, Err: loadErr}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: loadErr})
			return nil
		}
		rep := checkFile(fs, ids[path], path, opts, cfgHash)
		reports[i] = rep
		evt := Event{File: path, Stage: StageWslint, Status: StatusDone, Elapsed: time.Since(started)}
		if rep.Err != nil {
			evt.Status, evt.Err = StatusError, rep.Err
		}
		emit(opts.Progress, evt)
		return nil
	})

	total := diag.NewBag(0)
	for i := range reports {
		if reports[i].Bag != nil {
			total.Merge(reports[i].Bag)
		}
	}
	total.Sort()

	timing := make([]observ.Report, 0, len(reports)+1)
	timing = append(timing, loadTimer.Report())
	for i := range reports {
		timing = append(timing, reports[i].Timing)
	}

	return &CheckResult{
		FileSet: fs,
		Files:   reports,
		Bag:     total,
		Timing:  observ.Merge(timing...),
	}, runErr
}

// checkFile analyses one already-loaded file. Never returns findings
// through an error: everything diagnosable lands in the report's bag.
func checkFile(fs *source.FileSet, id source.FileID, path string, opts Options, cfgHash style.Digest) FileReport {
	file := fs.Get(id)
	rep := FileReport{Path: path, FileID: id}

	key := cacheKey(opts.ToolVersion, cfgHash, file.Hash)
	if opts.Cache != nil {
		var payload CachedFile
		// Ошибка чтения кеша деградирует до промаха.
		if ok, err := opts.Cache.Get(key, opts.ToolVersion, &payload); err == nil && ok {
			bag := diag.NewBag(opts.MaxFindings)
			for _, f := range cacheToFindings(id, payload.Findings) {
				bag.Add(f)
			}
			rep.Bag = bag
			rep.Cached = true
			return rep
		}
	}

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
	defer func() {
		if timer != nil {
			rep.Timing = timer.Report()
		}
	}()

	maxErrs, convErr := safecast.Conv[uint](opts.MaxFindings)
	if convErr != nil {
		maxErrs = 0
	}
	bag := diag.NewBag(opts.MaxFindings)
	rep.Bag = bag

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	idx := begin(observ.PhaseParse)
	tree := parser.Parse(file, parser.Options{MaxErrors: maxErrs, Reporter: bag})
	end(idx, fmt.Sprintf("nodes=%d", tree.NumNodes()))

	pass := lint.NewContext(lint.Pass{
		Tree:     tree,
		Config:   opts.Config,
		File:     file,
		Sink:     bag,
		Registry: opts.Registry,
	})

	emit(opts.Progress, Event{File: path, Stage: StageLint, Status: StatusWorking})
	idx = begin(observ.PhaseLint)
	lintErr := lint.Run(pass)
	end(idx, fmt.Sprintf("findings=%d", bag.Len()))
	if lintErr != nil {
		// Битое дерево: синтаксические находки уже в мешке, правила и
		// whitespace-проход по такому дереву не запускаются.
		var synErr *syntax.Error
		if !errors.As(lintErr, &synErr) {
			rep.Err = lintErr
		}
		rep.Failures = pass.Failures()
		return rep
	}

	emit(opts.Progress, Event{File: path, Stage: StageWslint, Status: StatusWorking})
	idx = begin(observ.PhaseWslint)
	wsErr := wslint.Run(pass)
	end(idx, "")
	if wsErr != nil {
		rep.Err = wsErr
	}
	rep.Failures = pass.Failures()

	// Кешируются только чистые прогоны: упавшее правило или сбой
	// рендера могли недодать находок. Ошибка записи не портит отчёт —
	// кеш необязателен.
	if opts.Cache != nil && rep.Err == nil && len(rep.Failures) == 0 {
		_ = opts.Cache.Put(key, &CachedFile{
			Schema:   cacheSchemaVersion,
			Tool:     opts.ToolVersion,
			Findings: findingsToCache(bag.Items()),
		})
	}
	return rep
}
