// Package logger provides optional file-backed debug logging for the TUI.
// Logging to stderr would corrupt the alternate screen, so everything goes
// to a file under the user's home directory when enabled, and to io.Discard
// otherwise.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// L is the global logger instance. It discards all output until Init enables
// a file sink.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix = "pageexplorer-"
	logSuffix = ".log"
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.pageexplorer/logs
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
}

// Init configures logging. Call from main() before any log calls.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".pageexplorer", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	filename := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Info logs at info level through the global logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Error logs at error level through the global logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }

// Debug logs at debug level through the global logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }
