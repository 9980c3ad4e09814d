package diag

import "sgstyle/internal/source"

type dedupKey struct {
	rule  string
	sev   Severity
	file  source.FileID
	start uint32
	end   uint32
	msg   string
}

// DedupReporter wraps another Reporter and suppresses duplicate findings
// with the same rule, severity, span and message. Downstream sinks can rely
// on never seeing the same finding twice.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique findings to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(f Finding) {
	if r == nil {
		return
	}
	key := dedupKey{
		rule:  f.Rule,
		sev:   f.Severity,
		file:  f.Span.File,
		start: f.Span.Start,
		end:   f.Span.End,
		msg:   f.Message,
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(f)
	}
}
