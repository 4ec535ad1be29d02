// Package timeouts defines the pacing and deadline constants used when
// talking to the host print spooler.
package timeouts

import "time"

const (
	// Batch Pacing

	// InterJobDelay is the pause after each submitted file before the next one
	// is sent. The spooler gives no completion signal, so this is a best-effort
	// throttle and not an acknowledgement wait.
	InterJobDelay = 20 * time.Second

	// Spooler Command Deadlines

	// PrinterQueryTimeout bounds a single printer enumeration (lpstat -a).
	PrinterQueryTimeout = 10 * time.Second

	// SubmitTimeout bounds a single lp submission. Hitting it fails the file
	// like any other submission error.
	SubmitTimeout = 60 * time.Second
)
