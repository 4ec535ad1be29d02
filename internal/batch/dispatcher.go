// Package batch sends a list of files to one printer, strictly one after the
// other, with a fixed pause between jobs.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Norgate-AV/batchprint/internal/interfaces"
	"github.com/Norgate-AV/batchprint/internal/logger"
	"github.com/Norgate-AV/batchprint/internal/timeouts"
)

// Request describes one batch
type Request struct {
	Dir     string
	Printer string
	Files   []string
}

// Run is the in-memory state of a batch. It only lives for one Dispatch call.
type Run struct {
	ID        string
	Dir       string
	Printer   string
	Files     []string
	Index     int // file currently being submitted
	Completed int
	StartedAt time.Time
}

// Result summarises a batch where every file was submitted
type Result struct {
	RunID     string
	Printer   string
	Submitted int
	Total     int
	Elapsed   time.Duration
}

// Options configures a Dispatcher. Zero values select the production defaults.
type Options struct {
	Delay    time.Duration // pause after each file; zero means no pause
	Pacer    Pacer
	Observer Observer
}

// DefaultOptions paces jobs with timeouts.InterJobDelay
func DefaultOptions() Options {
	return Options{Delay: timeouts.InterJobDelay}
}

// Dispatcher submits batches through a Spooler
type Dispatcher struct {
	log      logger.LoggerInterface
	spooler  interfaces.Spooler
	pacer    Pacer
	delay    time.Duration
	observer Observer
	now      func() time.Time
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(log logger.LoggerInterface, spooler interfaces.Spooler, opts Options) *Dispatcher {
	if opts.Pacer == nil {
		opts.Pacer = SleepPacer{}
	}

	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	return &Dispatcher{
		log:      log,
		spooler:  spooler,
		pacer:    opts.Pacer,
		delay:    opts.Delay,
		observer: opts.Observer,
		now:      time.Now,
	}
}

// CheckSelection validates the folder and printer choices, in that order
func CheckSelection(dir, printer string) error {
	if dir == "" {
		return ErrNoFolder
	}

	if printer == "" {
		return ErrNoPrinter
	}

	return nil
}

// Dispatch submits every file in req.Files to req.Printer in order. After each
// submission it waits the configured delay and then reports progress.
//
// The first failed submission aborts the batch: later files are not submitted
// and a *SubmitError naming the file and printer is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	if err := CheckSelection(req.Dir, req.Printer); err != nil {
		return nil, err
	}

	if len(req.Files) == 0 {
		return nil, ErrNoFiles
	}

	run := Run{
		ID:        uuid.NewString(),
		Dir:       req.Dir,
		Printer:   req.Printer,
		Files:     req.Files,
		StartedAt: d.now(),
	}

	total := len(run.Files)

	d.log.Debug("Starting batch",
		slog.String("run", run.ID),
		slog.String("spooler", d.spooler.Name()),
		slog.String("printer", run.Printer),
		slog.String("folder", run.Dir),
		slog.Int("files", total),
		slog.Duration("delay", d.delay),
	)

	d.observer.OnStart(run)

	for i, file := range run.Files {
		run.Index = i

		d.log.Debug("Submitting file",
			slog.String("run", run.ID),
			slog.Int("index", i+1),
			slog.String("file", file),
		)

		if err := d.spooler.Submit(ctx, run.Printer, file); err != nil {
			d.log.Debug("Submission failed, aborting batch",
				slog.String("run", run.ID),
				slog.Int("completed", run.Completed),
				slog.Any("error", err),
			)

			return nil, &SubmitError{Index: i, File: file, Printer: run.Printer, Err: err}
		}

		if err := d.pacer.Wait(ctx, d.delay); err != nil {
			return nil, fmt.Errorf("batch interrupted after %s: %w", filepath.Base(file), err)
		}

		run.Completed++
		d.observer.OnProgress(run.Completed, total, file)
	}

	result := &Result{
		RunID:     run.ID,
		Printer:   run.Printer,
		Submitted: run.Completed,
		Total:     total,
		Elapsed:   d.now().Sub(run.StartedAt),
	}

	d.log.Debug("Batch complete",
		slog.String("run", run.ID),
		slog.Int("submitted", result.Submitted),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}
