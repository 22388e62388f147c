package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is the canonical record of a scheduled job.
// Schedule is nil when the job has no schedule.
type Job struct {
	ID           uuid.UUID
	Created      time.Time
	Updated      time.Time
	Title        string
	Description  string
	Active       bool
	Task         string
	DefaultQueue string
	DefaultArgs  DataMap
	Schedule     DataMap
	LastRun      *Run
	LastRuns     map[string]RunReference
}
