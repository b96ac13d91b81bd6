package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// ZapLogger adapts a zap logger to pathname.Logger, emitting one JSON object
// per message. Verbose maps to debug level.
type ZapLogger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

var _ pathname.Logger = (*ZapLogger)(nil)

// NewZapLogger creates a JSON logger writing to out.
// Debug entries are emitted only when verbose is true.
// Panics if out is nil.
func NewZapLogger(out io.Writer, verbose bool) *ZapLogger {
	if out == nil {
		panic("out cannot be nil")
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.Lock(zapcore.AddSync(out)),
		zap.NewAtomicLevelAt(level),
	)
	return FromZap(zap.New(core))
}

// FromZap wraps an existing zap logger.
// Panics if logger is nil.
func FromZap(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ZapLogger{logger: logger, sugar: logger.Sugar()}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
