package log

import (
	"io"

	"go.uber.org/zap"
)

// ZapConfig configures the zap backend.
type ZapConfig struct {
	Level        string
	Mode         string // production | development | debug
	Encoding     string // json | console
	ColorEnabled bool
	// Output defaults to stdout.
	Output io.Writer
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type ctxKey struct{}
