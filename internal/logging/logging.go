// Package logging builds the diagnostic zap logger. Diagnostics go to stderr
// or a rotated file; stdout is left to the strategy output.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rustyeddy/strategyrun/config"
)

// New returns a logger for cfg along with a function that flushes it and
// releases the rotated file, if any.
func New(cfg config.LoggingConfig) (*zap.Logger, func(), error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var (
		sink    zapcore.WriteSyncer
		encoder zapcore.Encoder
		closer  io.Closer
	)
	if cfg.File == "" {
		sink = zapcore.Lock(os.Stderr)
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		sink = zapcore.AddSync(lj)
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		closer = lj
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level))

	done := func() {
		_ = logger.Sync()
		if closer != nil {
			_ = closer.Close()
		}
	}
	return logger, done, nil
}
