package spooler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/batchprint/internal/interfaces"
	"github.com/Norgate-AV/batchprint/internal/logger"
)

// Windows prints through the Windows spooler API and the shell "print" verb
type Windows struct {
	log   logger.LoggerInterface
	shell interfaces.PrintShell
}

// NewWindows creates a Windows spooler around the given shell bindings
func NewWindows(log logger.LoggerInterface, shell interfaces.PrintShell) *Windows {
	return &Windows{log: log, shell: shell}
}

func (w *Windows) Name() string {
	return "windows"
}

// ListPrinters returns the local printers reported by EnumPrinters
func (w *Windows) ListPrinters(_ context.Context) ([]string, error) {
	w.log.Debug("Enumerating local printers")

	printers, err := w.shell.EnumPrinters()
	if err != nil {
		return []string{}, fmt.Errorf("error listing printers: %w", err)
	}

	w.log.Debug("Printers found", slog.Int("count", len(printers)))
	return printers, nil
}

// Submit makes printer the system default and then invokes the shell print
// verb on file. The shell returns as soon as the print handler is launched;
// there is no way to tell when the document has actually been spooled.
func (w *Windows) Submit(ctx context.Context, printer, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.log.Debug("Setting default printer", slog.String("printer", printer))
	if err := w.shell.SetDefaultPrinter(printer); err != nil {
		return fmt.Errorf("error setting default printer: %w", err)
	}

	w.log.Debug("Invoking shell print verb", slog.String("file", file))
	if err := w.shell.ShellPrint(file); err != nil {
		return fmt.Errorf("error invoking print verb: %w", err)
	}

	return nil
}
