//go:build !windows

package spooler

import (
	"github.com/Norgate-AV/batchprint/internal/interfaces"
	"github.com/Norgate-AV/batchprint/internal/logger"
)

func newPlatformSpooler(log logger.LoggerInterface, opts Options) interfaces.Spooler {
	return NewCUPS(log, ExecRunner{}, opts)
}
