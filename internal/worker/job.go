package worker

import (
	"time"
)

// Reasons a backup job was submitted.
const (
	ReasonSchedule = "schedule"
	ReasonChange   = "change"
	ReasonStartup  = "startup"
)

// Job represents a backup request submitted to the worker.
type Job struct {
	Reason string
	At     time.Time
}
