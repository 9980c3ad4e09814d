package diag

import (
	"fmt"
	"sort"
)

type Bag struct {
	items []Finding
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Finding, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет finding, учитывая лимит.
// Возвращает false, если finding не добавлен (достигнут лимит).
func (b *Bag) Add(f Finding) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, f)
	return true
}

// Report implements Reporter; findings past the limit are dropped.
func (b *Bag) Report(f Finding) {
	b.Add(f)
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы один finding с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы один finding с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice findings.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Finding {
	return b.items
}

// CountRule returns the number of findings attributed to the given rule.
func (b *Bag) CountRule(rule string) int {
	n := 0
	for i := range b.items {
		if b.items[i].Rule == rule {
			n++
		}
	}
	return n
}

// Merge объединяет findings из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует findings по: file, start, end, severity (desc), rule (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		fi, fj := b.items[i], b.items[j]
		if fi.Span.File != fj.Span.File {
			return fi.Span.File < fj.Span.File
		}
		if fi.Span.Start != fj.Span.Start {
			return fi.Span.Start < fj.Span.Start
		}
		if fi.Span.End != fj.Span.End {
			return fi.Span.End < fj.Span.End
		}
		if fi.Severity != fj.Severity {
			return fi.Severity > fj.Severity
		}
		return fi.Rule < fj.Rule
	})
}

// простая дедупликация (по Rule+Span+Message)
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Finding, 0, len(b.items))
	for _, f := range b.items {
		key := fmt.Sprintf("%s:%s:%s", f.Rule, f.Span.String(), f.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, f)
	}
	b.items = newitems
}
