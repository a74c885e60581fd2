package driver

import "time"

// Stage describes one step of processing an input.
type Stage string

const (
	// StageLoad reads the input from disk.
	StageLoad Stage = "load"
	// StageTranslate tokenizes and translates the input.
	StageTranslate Stage = "translate"
	// StageWrite writes the translated output.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the input is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the input is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the input is finished.
	StatusDone Status = "done"
	// StatusError indicates the input failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: workers report independently.
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

func report(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
