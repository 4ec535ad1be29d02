package spooler

import "github.com/Norgate-AV/batchprint/internal/logger"

func noopLogger() logger.LoggerInterface {
	return logger.NewNoOpLogger()
}
