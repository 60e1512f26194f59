// Package logger is a small leveled logger that writes to a file.
//
// Output is discarded until a log file is configured, so logging from inside
// the full-screen wizard never draws over the terminal.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Environment variables read by New.
const (
	EnvLevel = "PLANWISE_LOG_LEVEL"
	EnvFile  = "PLANWISE_LOG_FILE"
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a case-insensitive level name. "warning" is accepted
// as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", s)
	}
}

// Logger writes "[LEVEL] message" lines at or above its level.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
	file  *os.File
}

// Default is the process-wide logger used by the package functions.
var Default = New()

// New creates a logger from PLANWISE_LOG_LEVEL and PLANWISE_LOG_FILE.
// Invalid values are ignored.
func New() *Logger {
	l := &Logger{
		level: LevelInfo,
		out:   log.New(io.Discard, "", log.LstdFlags),
	}
	_ = l.Configure(os.Getenv(EnvLevel), os.Getenv(EnvFile))
	return l
}

// Configure sets the level and the destination file. Empty arguments leave
// the current setting alone. A previously opened file is closed when a new
// one replaces it.
func (l *Logger) Configure(level, file string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level != "" {
		lv, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.level = lv
	}
	if file == "" {
		return nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	if l.file != nil {
		l.file.Close()
	}
	l.file = f
	l.out.SetOutput(f)
	return nil
}

// Level returns the current level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel sets the minimum level written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects output to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.SetOutput(w)
}

// Close closes the log file, if any, and discards further output.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.out.SetOutput(io.Discard)
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Debug(format string, v ...any) { l.logf(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...any)  { l.logf(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...any)  { l.logf(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...any) { l.logf(LevelError, format, v...) }

func (l *Logger) logf(level Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

// Configure configures the default logger.
func Configure(level, file string) error { return Default.Configure(level, file) }

func Debug(format string, v ...any) { Default.Debug(format, v...) }
func Info(format string, v ...any)  { Default.Info(format, v...) }
func Warn(format string, v ...any)  { Default.Warn(format, v...) }
func Error(format string, v ...any) { Default.Error(format, v...) }

// Close closes the default logger.
func Close() error { return Default.Close() }
