package journal

import (
	"github.com/rustyeddy/strategyrun/tradelog"
)

// Text appends "Trade executed at <timestamp>" lines to the plain trade log.
type Text struct {
	log *tradelog.Log
}

func NewText(path string) (*Text, error) {
	l, err := tradelog.Open(path)
	if err != nil {
		return nil, err
	}
	return &Text{log: l}, nil
}

func (j *Text) Path() string {
	return j.log.Path()
}

func (j *Text) RecordRun(r RunRecord) error {
	return j.log.Append(r.ExecutedAt)
}

func (j *Text) Close() error {
	return j.log.Close()
}
