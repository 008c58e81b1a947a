package store

import (
	"strings"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/domain"
)

// Recorder persists dispatch records to an AuditStore.
type Recorder struct {
	store domain.AuditStore
}

// NewRecorder returns a dispatchers.Recorder writing to store.
func NewRecorder(store domain.AuditStore) *Recorder {
	return &Recorder{store: store}
}

// Record implements dispatchers.Recorder.
func (r *Recorder) Record(rec dispatchers.Record) error {
	kind := rec.Kind.String()
	if rec.Silent {
		kind = "silent"
	}

	_, err := r.store.Insert(domain.AuditEntry{
		Invocation: rec.ID,
		SenderID:   rec.SenderID,
		SenderName: rec.SenderName,
		Command:    rec.Command,
		Input:      strings.Join(rec.Tokens, " "),
		Stage:      rec.Stage.String(),
		Kind:       kind,
		Message:    rec.Message,
		Error:      rec.Err,
		Async:      rec.Async,
		StartedAt:  rec.Started,
		DurationMS: rec.Duration.Milliseconds(),
	})
	return err
}

var _ dispatchers.Recorder = (*Recorder)(nil)
