package driver

import "time"

// Stage describes a pipeline phase of one file.
type Stage string

const (
	// StageParse is the lex+parse stage.
	StageParse Stage = "parse"
	// StageLint is the rule pipeline stage.
	StageLint Stage = "lint"
	// StageLayout is the canonical rendering stage.
	StageLayout Stage = "layout"
	// StageWslint is the whitespace comparison stage.
	StageWslint Stage = "wslint"
	// StageFix is the fix application stage.
	StageFix Stage = "fix"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file is finished.
	StatusDone Status = "done"
	// StatusError indicates processing of the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the overall run when File
// is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe
// for concurrent use; workers emit from their own goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// emit шлёт событие, если sink задан.
func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
