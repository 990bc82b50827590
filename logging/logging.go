package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Debug mode logs at debug level with a
// console encoder, otherwise info level as JSON.
func New(debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	encoding := "json"
	encoderConfig := zap.NewProductionEncoderConfig()
	if debug {
		level = zap.DebugLevel
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: debug,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

// WithRun tags logger with a fresh run id and returns both.
func WithRun(logger *zap.Logger, kind string) (*zap.Logger, string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return logger.With(zap.String("run", id), zap.String("run_kind", kind)), id
}
