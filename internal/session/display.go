package session

import "sync"

// Display receives everything a session wants shown to the learner.
//
// Methods are called while the session holds its lock, so an
// implementation must not call back into the Session.
type Display interface {
	ShowQuestion(text string)
	ShowResult(text string)
	// ShowTime is only called for TimeAttack sessions.
	ShowTime(text string)
	// ShowSummary is called exactly once, when the session ends.
	ShowSummary(text string)
	// ShowInfo carries mode banners and non-fatal notices.
	ShowInfo(text string)
}

// NopDisplay discards all output.
type NopDisplay struct{}

func (NopDisplay) ShowQuestion(string) {}
func (NopDisplay) ShowResult(string)   {}
func (NopDisplay) ShowTime(string)     {}
func (NopDisplay) ShowSummary(string)  {}
func (NopDisplay) ShowInfo(string)     {}

// EventKind names a Display method.
type EventKind string

const (
	EventQuestion EventKind = "question"
	EventResult   EventKind = "result"
	EventTime     EventKind = "time"
	EventSummary  EventKind = "summary"
	EventInfo     EventKind = "info"
)

// Event is one recorded Display call.
type Event struct {
	Kind EventKind
	Text string
}

// Recorder is a Display that keeps every call in order. It is safe for
// concurrent use and is mainly intended for tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ Display = (*Recorder)(nil)

func (r *Recorder) ShowQuestion(text string) { r.add(EventQuestion, text) }
func (r *Recorder) ShowResult(text string)   { r.add(EventResult, text) }
func (r *Recorder) ShowTime(text string)     { r.add(EventTime, text) }
func (r *Recorder) ShowSummary(text string)  { r.add(EventSummary, text) }
func (r *Recorder) ShowInfo(text string)     { r.add(EventInfo, text) }

func (r *Recorder) add(kind EventKind, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: kind, Text: text})
}

// Events returns a copy of the recorded calls.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the text of the most recent call of kind.
func (r *Recorder) Last(kind EventKind) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i].Text, true
		}
	}
	return "", false
}
