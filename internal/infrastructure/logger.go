package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"asteroidcli/internal/config"
)

var (
	globalMu     sync.Mutex
	globalLogger *slog.Logger
	globalOnce   sync.Once
	// globalCloser releases the log file opened by InitializeLogger
	globalCloser io.Closer = nopCloser{}

	// consoleWriter is where "console" output goes. Stdout is reserved for the report.
	consoleWriter io.Writer = os.Stderr
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitializeLogger builds the process logger from cfg on first call and
// installs it as the slog default. Later calls return the same logger.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var err error
	globalOnce.Do(func() {
		var (
			logger *slog.Logger
			closer io.Closer
		)
		logger, closer, err = NewLogger(cfg, consoleWriter)
		if err != nil {
			return
		}
		globalMu.Lock()
		globalLogger, globalCloser = logger, closer
		globalMu.Unlock()
		slog.SetDefault(logger)
	})
	return GetLogger(), err
}

// GetLogger returns the process logger, or slog.Default before InitializeLogger.
func GetLogger() *slog.Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}

// CloseLogFile closes the file opened by InitializeLogger, if any.
func CloseLogFile() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	err := globalCloser.Close()
	globalCloser = nopCloser{}
	return err
}

// ResetLoggerForTesting drops the process logger so InitializeLogger runs again.
func ResetLoggerForTesting() {
	CloseLogFile()
	globalMu.Lock()
	globalLogger = nil
	globalOnce = sync.Once{}
	globalMu.Unlock()
}

// NewLogger builds a logger without touching process state. The returned
// closer owns the log file for "file" and "both" outputs.
func NewLogger(cfg config.LoggingConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	out, closer, err := logOutput(cfg, console)
	if err != nil {
		return nil, nil, err
	}

	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return slog.New(runHandler{handler}), closer, nil
}

func logOutput(cfg config.LoggingConfig, console io.Writer) (io.Writer, io.Closer, error) {
	output := strings.ToLower(cfg.Output)
	if output != "file" && output != "both" {
		return console, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory for %s: %w", cfg.FilePath, err)
	}
	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	if output == "both" {
		return io.MultiWriter(console, f), f, nil
	}
	return f, f, nil
}

// runHandler tags every record logged with a run context with its trace_id
type runHandler struct {
	slog.Handler
}

func (h runHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetTraceID(ctx); id != "" {
		r.AddAttrs(slog.String("trace_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h runHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return runHandler{h.Handler.WithAttrs(attrs)}
}

func (h runHandler) WithGroup(name string) slog.Handler {
	return runHandler{h.Handler.WithGroup(name)}
}

// parseLogLevel accepts slog level names plus "warning"; anything else is info.
func parseLogLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
