package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// RecordRun stores times in UTC so range queries compare like with like.
func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, strategy, started_at, executed_at, host)
		VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.Strategy, r.StartedAt.UTC(), r.ExecutedAt.UTC(), r.Host,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
