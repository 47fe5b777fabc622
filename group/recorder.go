package group

import (
	"fmt"

	"github.com/jclermont/figura/model"
)

// Recorder accumulates human-readable justifications for grouping
// decisions. A Recorder is created at the start of a run and discarded
// with it, so concurrent conversions never share state. The log is
// append-only and kept in decision order.
type Recorder struct {
	entries []model.ReasoningEntry
}

// NewRecorder creates an empty run-scoped recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one reasoning entry for the given group.
func (r *Recorder) Record(groupID, format string, args ...any) {
	r.entries = append(r.entries, model.ReasoningEntry{
		GroupID: groupID,
		Message: fmt.Sprintf(format, args...),
	})
}

// Entries returns the recorded entries in decision order.
func (r *Recorder) Entries() []model.ReasoningEntry {
	return r.entries
}
