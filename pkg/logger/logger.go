package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide structured logger. Production config:
// JSON to stderr, info level.
func New() (*zap.Logger, error) {
	return zap.NewProduction()
}
