package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(runID string, executed time.Time) RunRecord {
	return RunRecord{
		RunID:      runID,
		Strategy:   "default",
		StartedAt:  executed.Add(-time.Millisecond),
		ExecutedAt: executed,
		Host:       "test-host",
	}
}

func TestGetRun(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	want := sampleRun("R123", time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, j.RecordRun(want))

	got, err := j.GetRun("R123")
	require.NoError(t, err)

	assert.Equal(t, want.RunID, got.RunID)
	assert.Equal(t, want.Strategy, got.Strategy)
	assert.True(t, got.StartedAt.Equal(want.StartedAt))
	assert.True(t, got.ExecutedAt.Equal(want.ExecutedAt))
	assert.Equal(t, want.Host, got.Host)
}

func TestGetRunNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetRun("nonexistent")
	require.ErrorIs(t, err, ErrRunNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestListRunsBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	day := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	runs := []RunRecord{
		sampleRun("BEFORE", day.Add(-time.Second)),
		sampleRun("START", day),
		sampleRun("NOON", day.Add(12*time.Hour)),
		sampleRun("LATE", day.Add(24*time.Hour-time.Microsecond)),
		sampleRun("NEXT", day.Add(24*time.Hour)),
	}
	for _, r := range runs {
		require.NoError(t, j.RecordRun(r))
	}

	got, err := j.ListRunsBetween(day, day.Add(24*time.Hour))
	require.NoError(t, err)

	var ids []string
	for _, r := range got {
		ids = append(ids, r.RunID)
	}
	assert.Equal(t, []string{"START", "NOON", "LATE"}, ids)
}

func TestListRunsBetweenAcrossZones(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	east := time.FixedZone("east", 5*60*60)
	at := time.Date(2024, 4, 10, 3, 0, 0, 0, east) // 2024-04-09 22:00 UTC
	require.NoError(t, j.RecordRun(sampleRun("EAST", at)))

	start := time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC)
	got, err := j.ListRunsBetween(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].ExecutedAt.Equal(at))
}

func TestCountRuns(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	n, err := j.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, j.RecordRun(sampleRun(id, time.Now())))
	}

	n, err = j.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
