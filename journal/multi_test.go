package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournal struct {
	runs     []RunRecord
	recErr   error
	closeErr error
	closed   bool
}

func (f *fakeJournal) RecordRun(r RunRecord) error {
	if f.recErr != nil {
		return f.recErr
	}
	f.runs = append(f.runs, r)
	return nil
}

func (f *fakeJournal) Close() error {
	f.closed = true
	return f.closeErr
}

func TestMultiRecordRun(t *testing.T) {
	t.Parallel()

	a, b := &fakeJournal{}, &fakeJournal{}
	m := Multi{a, b}

	require.NoError(t, m.RecordRun(sampleRun("R1", time.Now())))
	assert.Len(t, a.runs, 1)
	assert.Len(t, b.runs, 1)
}

func TestMultiStopsAtFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	a, b := &fakeJournal{recErr: boom}, &fakeJournal{}
	m := Multi{a, b}

	err := m.RecordRun(sampleRun("R1", time.Now()))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, b.runs)
}

func TestMultiCloseClosesAll(t *testing.T) {
	t.Parallel()

	first, second := errors.New("first"), errors.New("second")
	a := &fakeJournal{closeErr: first}
	b := &fakeJournal{closeErr: second}
	c := &fakeJournal{}

	err := Multi{a, b, c}.Close()
	assert.ErrorIs(t, err, first)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.True(t, c.closed)
}
