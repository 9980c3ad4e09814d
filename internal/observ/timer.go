// Package observ measures where a run spends its time. A Timer collects
// named phases, a Report serializes them, and Merge folds the per-file
// reports of a parallel run into one run-level view.
//
// Назначение: тайминги конвейера (parse/lint/layout/wslint) для вывода
// под --timings и для machine-читаемых отчётов.
// Не делает: метрик, трейсинга и вывода — только сбор и агрегацию.
// Зависимости: стандартная библиотека.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Standard phase names of the check pipeline. Callers may begin phases
// with arbitrary names; these cover the common flow.
const (
	PhaseLoad   = "load"
	PhaseParse  = "parse"
	PhaseLint   = "lint"
	PhaseLayout = "layout"
	PhaseWslint = "wslint"
)

// Phase records one timed stage of a run.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of pipeline phases in begin order.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index. Out-of-range indexes are ignored,
// so callers can pass -1 when timings are disabled.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Summary renders the tracked phases for humans.
func (t *Timer) Summary() string { return t.Report().Summary() }

// PhaseReport — сжатая информация об одной фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report — агрегированные данные таймера: фазы в порядке запуска и
// общая длительность в миллисекундах.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases,omitempty"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Summary returns a human-readable rendering of the report, one line
// per phase plus a total line.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-12s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %8.2f ms\n", "total", r.TotalMS)
	return b.String()
}

// Merge складывает отчёты по именам фаз: длительности суммируются,
// порядок фаз — по первому появлению, заметки в агрегате опускаются.
// Пустые отчёты не вносят фаз.
func Merge(reports ...Report) Report {
	var (
		out   Report
		index = make(map[string]int)
	)
	for _, r := range reports {
		out.TotalMS += r.TotalMS
		for _, p := range r.Phases {
			i, ok := index[p.Name]
			if !ok {
				i = len(out.Phases)
				index[p.Name] = i
				out.Phases = append(out.Phases, PhaseReport{Name: p.Name})
			}
			out.Phases[i].DurationMS += p.DurationMS
		}
	}
	return out
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
