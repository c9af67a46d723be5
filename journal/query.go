package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const runColumns = `run_id, strategy, started_at, executed_at, host`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var rec RunRecord
	err := s.Scan(
		&rec.RunID,
		&rec.Strategy,
		&rec.StartedAt,
		&rec.ExecutedAt,
		&rec.Host,
	)
	return rec, err
}

// GetRun returns a single run by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, fmt.Errorf("run %q: %w", runID, ErrRunNotFound)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRunsBetween returns runs whose executed_at is within [start, end).
func (j *SQLite) ListRunsBetween(start, end time.Time) ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		WHERE executed_at >= ? AND executed_at < ?
		ORDER BY executed_at ASC, run_id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountRuns returns the number of recorded runs.
func (j *SQLite) CountRuns() (int, error) {
	var n int
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
