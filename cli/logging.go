package cli

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	DEFAULT = 2
	VERBOSE = 3
	DEBUG   = 4
	TRACE   = 5
)

// NewLogger builds a zap-backed logr.Logger writing to w.
// Verbosity n enables logger.V(0..n); dev selects the console encoder.
func NewLogger(w zapcore.WriteSyncer, verbosity int, dev bool) logr.Logger {
	var enc zapcore.Encoder
	if dev {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	level := zap.NewAtomicLevelAt(zapcore.Level(int8(-verbosity)))
	core := zapcore.NewCore(enc, w, level)

	return zapr.NewLogger(zap.New(core, zap.AddCaller()))
}

// NewStderrLogger is NewLogger on standard error.
func NewStderrLogger(verbosity int, dev bool) logr.Logger {
	return NewLogger(zapcore.Lock(os.Stderr), verbosity, dev)
}

// Fatal logs err and exits with status 1.
func Fatal(logger logr.Logger, err error, msg string, keysAndValues ...any) {
	logger.Error(err, msg, keysAndValues...)
	os.Exit(1)
}
