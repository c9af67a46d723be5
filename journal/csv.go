package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// CSVHeader is written once, when the file is new or empty.
var CSVHeader = []string{"run_id", "strategy", "started_at", "executed_at", "host"}

// CSV appends one row per run. Existing rows are left alone.
type CSV struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(CSVHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write csv header: %w", err)
		}
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) RecordRun(r RunRecord) error {
	err := j.w.Write([]string{
		r.RunID,
		r.Strategy,
		r.StartedAt.Format(time.RFC3339Nano),
		r.ExecutedAt.Format(time.RFC3339Nano),
		r.Host,
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}
