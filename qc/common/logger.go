package common

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Logger is a log utility to log to. Informational and error messages are
// kept as entries so callers can report them back (e.g. over HTTP). A nil
// Logger writes to the default slog logger and keeps nothing.
type Logger struct {
	Entries []*LogEntry

	mu  sync.Mutex
	out *slog.Logger
}

// Dbg prints a debug message. Debug messages are not kept.
func (l *Logger) Dbg(format string, v ...interface{}) {
	l.logger().Debug(fmt.Sprintf(format, v...))
}

// Msg logs an informational message
func (l *Logger) Msg(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.logger().Info(msg)
	l.add(&LogEntry{false, msg})
}

// Err logs an error message
func (l *Logger) Err(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.logger().Error(msg)
	l.add(&LogEntry{true, msg})
}

// Fatal logs an error message and exits
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logger().Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Errors returns the messages of error entries
func (l *Logger) Errors() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	var errs []string
	for _, e := range l.Entries {
		if e.IsError {
			errs = append(errs, e.Msg)
		}
	}
	return errs
}

func (l *Logger) add(e *LogEntry) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.Entries = append(l.Entries, e)
	l.mu.Unlock()
}

func (l *Logger) logger() *slog.Logger {
	if l == nil || l.out == nil {
		return slog.Default()
	}
	return l.out
}

// NewLog creates a new logger writing to the default slog logger
func NewLog() *Logger {
	return new(Logger)
}

// NewLogWith creates a new logger writing to out
func NewLogWith(out *slog.Logger) *Logger {
	return &Logger{out: out}
}

// LogEntry contains the message and metadata
type LogEntry struct {
	IsError bool
	Msg     string
}
