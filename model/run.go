package model

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusQueued         RunStatus = "QUEUED"
	RunStatusRunning        RunStatus = "RUNNING"
	RunStatusSuccess        RunStatus = "SUCCESS"
	RunStatusFailed         RunStatus = "FAILED"
	RunStatusWarning        RunStatus = "WARNING"
	RunStatusCancelling     RunStatus = "CANCELLING"
	RunStatusCancelled      RunStatus = "CANCELLED"
	RunStatusPartialSuccess RunStatus = "PARTIAL_SUCCESS"
)

// Run is the canonical record of one execution of a job.
type Run struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	TaskID      uuid.UUID
	Created     time.Time
	Updated     time.Time
	StartedByID *int
	StartedBy   *User
	StartedAt   *time.Time
	FinishedAt  *time.Time
	Status      RunStatus
	Message     string
	Title       string
	Args        DataMap
	Queue       string
}

// RunReference is an entry of a job's run history that can be resolved
// to its plain run record.
type RunReference interface {
	Resolve() *Run
}

// Resolve lets a plain run be used as its own reference.
func (r *Run) Resolve() *Run {
	return r
}
