// Package strategy runs the trading strategy routine: announce the run on
// the console, then record it in the journal.
package strategy

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/strategyrun/journal"
	"github.com/rustyeddy/strategyrun/pkg/id"
	"github.com/rustyeddy/strategyrun/tradelog"
)

// ConsolePrefix starts the line printed at the top of every run.
const ConsolePrefix = "Running trading strategy at "

// Clock supplies the wall clock time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local time.
var SystemClock Clock = ClockFunc(time.Now)

type Runner struct {
	Name    string
	Clock   Clock
	Out     io.Writer
	Journal journal.Journal
	Logger  *zap.Logger
	Host    string
}

// NewRunner returns a Runner on the system clock that prints to out.
func NewRunner(name string, out io.Writer, j journal.Journal, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	host, err := os.Hostname()
	if err != nil {
		logger.Debug("hostname unavailable", zap.Error(err))
	}
	return &Runner{
		Name:    name,
		Clock:   SystemClock,
		Out:     out,
		Journal: j,
		Logger:  logger,
		Host:    host,
	}
}

// Run executes the routine once. The console and journal timestamps come
// from two separate clock reads.
func (r *Runner) Run(ctx context.Context) (journal.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return journal.RunRecord{}, err
	}

	started := r.Clock.Now()
	if _, err := fmt.Fprintf(r.Out, "%s%s\n", ConsolePrefix, tradelog.FormatTimestamp(started)); err != nil {
		return journal.RunRecord{}, fmt.Errorf("write console: %w", err)
	}

	executed := r.Clock.Now()
	rec := journal.RunRecord{
		RunID:      id.NewAt(executed),
		Strategy:   r.Name,
		StartedAt:  started,
		ExecutedAt: executed,
		Host:       r.Host,
	}

	if err := r.Journal.RecordRun(rec); err != nil {
		r.logger().Error("record run failed", zap.String("run_id", rec.RunID), zap.Error(err))
		return journal.RunRecord{}, fmt.Errorf("record run: %w", err)
	}

	r.logger().Info("run recorded",
		zap.String("run_id", rec.RunID),
		zap.String("strategy", rec.Strategy),
		zap.Time("executed_at", rec.ExecutedAt))
	return rec, nil
}

// RunN runs the routine n times in sequence and returns the records
// produced before the first failure.
func (r *Runner) RunN(ctx context.Context, n int) ([]journal.RunRecord, error) {
	if n < 1 {
		return nil, fmt.Errorf("run count must be at least 1, got %d", n)
	}

	recs := make([]journal.RunRecord, 0, n)
	for i := 0; i < n; i++ {
		rec, err := r.Run(ctx)
		if err != nil {
			return recs, fmt.Errorf("run %d of %d: %w", i+1, n, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
