// Package logger provides structured diagnostic logging for kestrel.
//
// User-facing messages belong in the output package; this logger records
// what the build did (files read, classes pruned, symbols written) and is
// silent unless verbose mode is on.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for consistent structured logging.
const (
	FieldManifest  = "manifest"
	FieldConfig    = "config"
	FieldPackage   = "package"
	FieldClass     = "class"
	FieldType      = "type"
	FieldStyleable = "styleable"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldBytes     = "bytes"
)

var defaultLogger = zap.NewNop().Sugar()

// New returns a console logger writing to out (stderr when nil). Verbose
// enables debug level; otherwise only warnings and errors are written.
func New(out io.Writer, verbose bool) *zap.SugaredLogger {
	if out == nil {
		out = os.Stderr
	}

	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(out),
		level,
	)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// SetDefault replaces the package-level logger.
func SetDefault(l *zap.SugaredLogger) {
	if l == nil {
		l = Nop()
	}
	defaultLogger = l
}

// Default returns the package-level logger. It is a no-op logger until
// SetDefault is called.
func Default() *zap.SugaredLogger {
	return defaultLogger
}
