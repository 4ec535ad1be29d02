// Package spooler lists installed printers and submits files to them, using
// the Windows spooler API on Windows and the CUPS command-line tools elsewhere.
package spooler

import (
	"github.com/Norgate-AV/batchprint/internal/interfaces"
	"github.com/Norgate-AV/batchprint/internal/logger"
)

// Options configures the CUPS variant; the Windows variant ignores it
type Options struct {
	LPPath     string
	LPStatPath string
}

func (o Options) withDefaults() Options {
	if o.LPPath == "" {
		o.LPPath = "lp"
	}

	if o.LPStatPath == "" {
		o.LPStatPath = "lpstat"
	}

	return o
}

// New returns the spooler for the host OS
func New(log logger.LoggerInterface, opts Options) interfaces.Spooler {
	sp := newPlatformSpooler(log, opts)
	log.Debug("Spooler selected", "variant", sp.Name())

	return sp
}
