// Package journal records each strategy run to one or more sinks.
package journal

import (
	"errors"
	"time"
)

// ErrRunNotFound is returned by lookups for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// RunRecord describes a single execution of the strategy routine.
type RunRecord struct {
	RunID      string
	Strategy   string
	StartedAt  time.Time
	ExecutedAt time.Time
	Host       string
}

type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}
