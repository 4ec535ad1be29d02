package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/batchprint/internal/batch"
	"github.com/Norgate-AV/batchprint/internal/files"
	"github.com/Norgate-AV/batchprint/internal/logger"
	"github.com/Norgate-AV/batchprint/internal/testutil"
)

func newDispatcher(sp *testutil.MockSpooler, pacer *testutil.MockPacer, obs *testutil.MockObserver) *batch.Dispatcher {
	return batch.NewDispatcher(logger.NewNoOpLogger(), sp, batch.Options{
		Delay:    20 * time.Second,
		Pacer:    pacer,
		Observer: obs,
	})
}

func TestDispatch_Preconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      batch.Request
		expected error
	}{
		{
			name:     "no folder",
			req:      batch.Request{Printer: "HP-Office", Files: []string{"/tmp/a.pdf"}},
			expected: batch.ErrNoFolder,
		},
		{
			name:     "no printer",
			req:      batch.Request{Dir: "/tmp", Files: []string{"/tmp/a.pdf"}},
			expected: batch.ErrNoPrinter,
		},
		{
			name:     "no files",
			req:      batch.Request{Dir: "/tmp", Printer: "HP-Office"},
			expected: batch.ErrNoFiles,
		},
		{
			name:     "folder checked before printer",
			req:      batch.Request{},
			expected: batch.ErrNoFolder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sp := testutil.NewMockSpooler()
			pacer := testutil.NewMockPacer()
			obs := testutil.NewMockObserver()

			result, err := newDispatcher(sp, pacer, obs).Dispatch(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.expected)
			assert.True(t, batch.IsPrecondition(err))
			assert.Nil(t, result)
			assert.Empty(t, sp.Submissions, "no print call may be made")
			assert.Empty(t, pacer.Waits)
			assert.Empty(t, obs.Starts)
			assert.Empty(t, obs.Progress)
		})
	}
}

func TestDispatch_AllSucceed(t *testing.T) {
	t.Parallel()

	sp := testutil.NewMockSpooler()
	pacer := testutil.NewMockPacer()
	obs := testutil.NewMockObserver()

	fileList := []string{"/docs/1.pdf", "/docs/2.pdf", "/docs/3.pdf", "/docs/4.pdf"}
	req := batch.Request{Dir: "/docs", Printer: "Lab-Laser", Files: fileList}

	result, err := newDispatcher(sp, pacer, obs).Dispatch(context.Background(), req)
	require.NoError(t, err)

	// Exactly K submissions, in list order, all to the chosen printer
	assert.Equal(t, fileList, sp.SubmittedFiles())
	for _, s := range sp.Submissions {
		assert.Equal(t, "Lab-Laser", s.Printer)
	}

	// One pacing wait per file
	assert.Equal(t, []time.Duration{20 * time.Second, 20 * time.Second, 20 * time.Second, 20 * time.Second}, pacer.Waits)

	// Progress (i, K) after the i-th call
	require.Len(t, obs.Progress, len(fileList))
	for i, p := range obs.Progress {
		assert.Equal(t, testutil.ProgressCall{Done: i + 1, Total: len(fileList), File: fileList[i]}, p)
	}

	require.Len(t, obs.Starts, 1)
	assert.Equal(t, "Lab-Laser", obs.Starts[0].Printer)
	assert.Equal(t, "/docs", obs.Starts[0].Dir)

	require.NotNil(t, result)
	assert.Equal(t, 4, result.Submitted)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, "Lab-Laser", result.Printer)
	assert.Equal(t, obs.Starts[0].ID, result.RunID)

	_, err = uuid.Parse(result.RunID)
	assert.NoError(t, err, "run ID should be a UUID")
}

func TestDispatch_FailureAbortsRemainingBatch(t *testing.T) {
	t.Parallel()

	cause := errors.New("lp exited with status 1: printer is disabled")
	sp := testutil.NewMockSpooler().WithSubmitErrorAt(1, cause)
	pacer := testutil.NewMockPacer()
	obs := testutil.NewMockObserver()

	fileList := []string{"/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf", "/docs/d.pdf"}
	req := batch.Request{Dir: "/docs", Printer: "HP-Office", Files: fileList}

	result, err := newDispatcher(sp, pacer, obs).Dispatch(context.Background(), req)
	assert.Nil(t, result)
	require.Error(t, err)

	// Nothing after the failing file was submitted
	assert.Equal(t, []string{"/docs/a.pdf", "/docs/b.pdf"}, sp.SubmittedFiles())

	// Only the successful file was paced and reported
	assert.Len(t, pacer.Waits, 1)
	assert.Equal(t, []testutil.ProgressCall{{Done: 1, Total: 4, File: "/docs/a.pdf"}}, obs.Progress)

	var submitErr *batch.SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, 1, submitErr.Index)
	assert.Equal(t, "/docs/b.pdf", submitErr.File)
	assert.Equal(t, "HP-Office", submitErr.Printer)
	assert.ErrorIs(t, err, cause)
	assert.False(t, batch.IsPrecondition(err))

	assert.Contains(t, err.Error(), "/docs/b.pdf")
	assert.Contains(t, err.Error(), "HP-Office")
	assert.Contains(t, err.Error(), "printer is disabled")
}

func TestDispatch_FirstFileFails(t *testing.T) {
	t.Parallel()

	sp := testutil.NewMockSpooler().WithSubmitErrorAt(0, errors.New("boom"))
	pacer := testutil.NewMockPacer()
	obs := testutil.NewMockObserver()

	req := batch.Request{Dir: "/docs", Printer: "HP-Office", Files: []string{"/docs/a.pdf", "/docs/b.pdf"}}

	_, err := newDispatcher(sp, pacer, obs).Dispatch(context.Background(), req)
	require.Error(t, err)

	assert.Len(t, sp.Submissions, 1)
	assert.Empty(t, pacer.Waits)
	assert.Empty(t, obs.Progress)
}

func TestDispatch_PacerErrorStopsBatch(t *testing.T) {
	t.Parallel()

	sp := testutil.NewMockSpooler()
	pacer := testutil.NewMockPacer().WithError(context.Canceled)
	obs := testutil.NewMockObserver()

	req := batch.Request{Dir: "/docs", Printer: "HP-Office", Files: []string{"/docs/a.pdf", "/docs/b.pdf"}}

	_, err := newDispatcher(sp, pacer, obs).Dispatch(context.Background(), req)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, sp.Submissions, 1)
	assert.Empty(t, obs.Progress)
}

func TestDispatch_Scenario_MixedFolder(t *testing.T) {
	t.Parallel()

	dir, paths := testutil.CreateTestFolder(t, "a.pdf", "b.pdf", "notes.txt")

	fileList, err := files.List(dir)
	require.NoError(t, err)
	assert.Equal(t, paths[:2], fileList)

	sp := testutil.NewMockSpooler().WithPrinters("HP-Office")
	pacer := testutil.NewMockPacer()
	obs := testutil.NewMockObserver()

	result, err := newDispatcher(sp, pacer, obs).Dispatch(context.Background(), batch.Request{
		Dir:     dir,
		Printer: "HP-Office",
		Files:   fileList,
	})
	require.NoError(t, err)

	assert.Equal(t, []testutil.Submission{
		{Printer: "HP-Office", File: paths[0]},
		{Printer: "HP-Office", File: paths[1]},
	}, sp.Submissions)
	assert.Equal(t, []time.Duration{20 * time.Second, 20 * time.Second}, pacer.Waits)
	assert.Equal(t, 2, result.Submitted)
}

func TestDispatch_Scenario_EmptyFolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileList, err := files.List(dir)
	require.NoError(t, err)
	assert.Empty(t, fileList)

	sp := testutil.NewMockSpooler()
	_, err = newDispatcher(sp, testutil.NewMockPacer(), testutil.NewMockObserver()).Dispatch(context.Background(), batch.Request{
		Dir:     dir,
		Printer: "HP-Office",
		Files:   fileList,
	})

	assert.ErrorIs(t, err, batch.ErrNoFiles)
	assert.Empty(t, sp.Submissions)
}

func TestDispatch_DefaultsToNoObserver(t *testing.T) {
	t.Parallel()

	sp := testutil.NewMockSpooler()
	d := batch.NewDispatcher(logger.NewNoOpLogger(), sp, batch.Options{Pacer: testutil.NewMockPacer()})

	_, err := d.Dispatch(context.Background(), batch.Request{Dir: "/d", Printer: "p", Files: []string{"/d/x.pdf"}})
	assert.NoError(t, err)
}

func TestProgressFunc(t *testing.T) {
	t.Parallel()

	var calls []string
	obs := batch.ProgressFunc(func(done, total int, file string) {
		calls = append(calls, file)
	})

	sp := testutil.NewMockSpooler()
	d := batch.NewDispatcher(logger.NewNoOpLogger(), sp, batch.Options{Pacer: testutil.NewMockPacer(), Observer: obs})

	_, err := d.Dispatch(context.Background(), batch.Request{Dir: "/d", Printer: "p", Files: []string{"/d/x.pdf", "/d/y.pdf"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/d/x.pdf", "/d/y.pdf"}, calls)
}

func TestCheckSelection(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, batch.CheckSelection("", ""), batch.ErrNoFolder)
	assert.ErrorIs(t, batch.CheckSelection("/d", ""), batch.ErrNoPrinter)
	assert.NoError(t, batch.CheckSelection("/d", "p"))
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20*time.Second, batch.DefaultOptions().Delay)
}
