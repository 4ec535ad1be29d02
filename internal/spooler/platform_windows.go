//go:build windows

package spooler

import (
	"github.com/Norgate-AV/batchprint/internal/interfaces"
	"github.com/Norgate-AV/batchprint/internal/logger"
	"github.com/Norgate-AV/batchprint/internal/windows"
)

func newPlatformSpooler(log logger.LoggerInterface, _ Options) interfaces.Spooler {
	return NewWindows(log, windows.NewPrintShell())
}
