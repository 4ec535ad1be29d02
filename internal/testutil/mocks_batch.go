package testutil

import (
	"context"
	"time"

	"github.com/Norgate-AV/batchprint/internal/batch"
)

// MockPacer implements batch.Pacer without sleeping
type MockPacer struct {
	Waits []time.Duration
	Err   error
}

func NewMockPacer() *MockPacer {
	return &MockPacer{Waits: []time.Duration{}}
}

func (m *MockPacer) Wait(_ context.Context, d time.Duration) error {
	m.Waits = append(m.Waits, d)
	return m.Err
}

func (m *MockPacer) WithError(err error) *MockPacer {
	m.Err = err
	return m
}

// ProgressCall records one Observer.OnProgress call
type ProgressCall struct {
	Done  int
	Total int
	File  string
}

// MockObserver implements batch.Observer
type MockObserver struct {
	Starts   []batch.Run
	Progress []ProgressCall
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		Starts:   []batch.Run{},
		Progress: []ProgressCall{},
	}
}

func (m *MockObserver) OnStart(run batch.Run) {
	m.Starts = append(m.Starts, run)
}

func (m *MockObserver) OnProgress(done, total int, file string) {
	m.Progress = append(m.Progress, ProgressCall{Done: done, Total: total, File: file})
}
