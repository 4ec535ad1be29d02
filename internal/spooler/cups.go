package spooler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/batchprint/internal/interfaces"
	"github.com/Norgate-AV/batchprint/internal/logger"
	"github.com/Norgate-AV/batchprint/internal/timeouts"
)

// CUPS talks to the spooler through the lpstat and lp commands
type CUPS struct {
	log        logger.LoggerInterface
	runner     interfaces.CommandRunner
	lpPath     string
	lpstatPath string
}

// NewCUPS creates a CUPS spooler. Empty paths fall back to "lp" and "lpstat" on PATH.
func NewCUPS(log logger.LoggerInterface, runner interfaces.CommandRunner, opts Options) *CUPS {
	opts = opts.withDefaults()

	return &CUPS{
		log:        log,
		runner:     runner,
		lpPath:     opts.LPPath,
		lpstatPath: opts.LPStatPath,
	}
}

func (c *CUPS) Name() string {
	return "cups"
}

// ListPrinters runs `lpstat -a`. If the command fails the error is returned
// with an empty list; the caller decides how loudly to report it.
func (c *CUPS) ListPrinters(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.PrinterQueryTimeout)
	defer cancel()

	c.log.Debug("Listing printers", slog.String("command", c.lpstatPath+" -a"))

	out, err := c.runner.Output(ctx, c.lpstatPath, "-a")
	if err != nil {
		return []string{}, fmt.Errorf("error listing printers: %w", err)
	}

	printers := ParsePrinterNames(string(out))
	c.log.Debug("Printers found", slog.Int("count", len(printers)))

	return printers, nil
}

// Submit runs `lp -d <printer> <file>`. A non-zero exit fails the submission.
func (c *CUPS) Submit(ctx context.Context, printer, file string) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.SubmitTimeout)
	defer cancel()

	c.log.Debug("Submitting print job",
		slog.String("printer", printer),
		slog.String("file", file),
	)

	out, err := c.runner.Output(ctx, c.lpPath, "-d", printer, file)
	if err != nil {
		return err
	}

	// lp prints "request id is HP-Office-42 (1 file(s))"
	c.log.Debug("Print job accepted", slog.String("response", string(out)))

	return nil
}
