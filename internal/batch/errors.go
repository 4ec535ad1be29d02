package batch

import (
	"errors"
	"fmt"
)

// Precondition failures. No print call is made when one of these is returned.
var (
	ErrNoFolder  = errors.New("select a folder containing PDF files")
	ErrNoPrinter = errors.New("select a printer before printing")
	ErrNoFiles   = errors.New("no PDF files found in the folder")
)

// IsPrecondition reports whether err is one of the precondition failures
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoFolder) || errors.Is(err, ErrNoPrinter) || errors.Is(err, ErrNoFiles)
}

// SubmitError is returned when a file could not be handed to the printer.
// It aborts the rest of the batch.
type SubmitError struct {
	Index   int // zero-based position of File in the batch
	File    string
	Printer string
	Err     error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("error printing %s on printer %s: %v", e.File, e.Printer, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}
