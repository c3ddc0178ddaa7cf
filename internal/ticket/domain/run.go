package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus describes where a generation run is in its lifecycle.
type RunStatus string

// Run lifecycle states: a submitted run validates, generates and writes, then
// lands in either succeeded or failed.
const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// SuccessMessage is the single human-readable status delivered after a
// successful run.
const SuccessMessage = "Successfully wrote to CSV"

// Run records one generation run: its request, lifecycle state and the single
// completion message produced when it finishes.
type Run struct {
	// ID uniquely identifies the run.
	ID uuid.UUID
	// Request is the parameter bundle the run consumed.
	Request GenerationRequest
	// Status is the run's current lifecycle state.
	Status RunStatus
	// Message is the one-shot completion text: SuccessMessage or an error description.
	Message string
	// RowsWritten is the number of CSV rows emitted before completion or failure.
	RowsWritten int
	// StartedAt is when the worker picked the run up.
	StartedAt time.Time
	// FinishedAt is when the run completed or failed (zero while in flight).
	FinishedAt time.Time
}

// Finished reports whether the run has reached a terminal state.
func (r *Run) Finished() bool {
	return r.Status == RunStatusSucceeded || r.Status == RunStatusFailed
}
