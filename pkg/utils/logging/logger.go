package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogDir = "logs"

// Options controls how the logger is assembled.
type Options struct {
	// Env names the runtime environment and prefixes the log file.
	Env string
	// Dir is where log files are written. Defaults to "logs".
	Dir string
	// Verbose lowers the console level from Info to Debug.
	Verbose bool
}

// New builds a logger that writes human-readable output to the console
// and full-detail JSON to a per-run log file. The returned cleanup
// function flushes buffered entries and closes the file.
func New(opts Options) (*zap.Logger, func(), error) {
	dir := opts.Dir
	if dir == "" {
		dir = defaultLogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	env := opts.Env
	if env == "" {
		env = "local"
	}
	name := fmt.Sprintf("%s_%s.log", env, time.Now().Format("2006-01-02_15-04-05"))
	logFile, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	consoleLevel := zapcore.InfoLevel
	if opts.Verbose {
		consoleLevel = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		consoleCore(os.Stdout, consoleLevel),
		fileCore(logFile),
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	cleanup := func() {
		_ = logger.Sync()
		_ = logFile.Close()
	}
	return logger, cleanup, nil
}

// consoleCore renders colored, time-of-day prefixed lines for operators
// running commands interactively.
func consoleCore(w io.Writer, level zapcore.Level) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
}

// fileCore captures everything, Debug included, as JSON for later
// inspection.
func fileCore(w io.Writer) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), zapcore.DebugLevel)
}
