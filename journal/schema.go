package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	strategy TEXT NOT NULL,
	started_at DATETIME NOT NULL,
	executed_at DATETIME NOT NULL,
	host TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_executed_at ON runs(executed_at);
`
