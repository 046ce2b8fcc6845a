package ingest

import (
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

type Run struct {
	ID         string
	Source     string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string // RUNNING, COMPLETED, FAILED
	Fetched    int
	Added      int
	Skipped    int
	Error      string
}
