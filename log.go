package glint

import (
	"fmt"
	"io"
	"os"
	"time"

	"gitlab.com/variadico/lctime"
)

// Logger is the leveled logger used by the loader and, optionally, by
// embedders. It matches the shape of gothird's internal/logio: a thin
// wrapper over an io.Writer with one method per level, each taking a mark
// (a short tag identifying the call site, e.g. a file path or "bootstrap")
// and a printf-style message. Timestamps are rendered with
// lctime.Strftime rather than time.Format, which is otherwise unused in
// the corpus for this purpose.
type Logger struct {
	w      io.Writer
	format string
	level  int
}

// levelRank orders the three levels so line can suppress anything below
// the configured minimum; unrecognized levels rank as "info".
func levelRank(level string) int {
	switch level {
	case "warn":
		return 1
	case "error":
		return 2
	default:
		return 0
	}
}

// NewLogger builds a Logger writing to w, with ts as the strftime format
// used for each line's timestamp. An empty ts uses "%Y-%m-%d %H:%M:%S".
// The logger starts at the "info" level; use SetLevel to raise it.
func NewLogger(w io.Writer, ts string) *Logger {
	if ts == "" {
		ts = "%Y-%m-%d %H:%M:%S"
	}
	return &Logger{w: w, format: ts}
}

// StderrLogger is the default Logger, writing to os.Stderr.
func StderrLogger() *Logger { return NewLogger(os.Stderr, "") }

// SetLevel sets the minimum level that reaches the writer; one of "info",
// "warn", "error". Any other value (including "") means "info".
func (l *Logger) SetLevel(level string) {
	if l == nil {
		return
	}
	l.level = levelRank(level)
}

func (l *Logger) line(level, mark, mess string, args []interface{}) {
	if l == nil || l.w == nil {
		return
	}
	if levelRank(level) < l.level {
		return
	}
	ts := lctime.Strftime(l.format, time.Now())
	fmt.Fprintf(l.w, "%s [%s] %s: %s\n", ts, level, mark, fmt.Sprintf(mess, args...))
}

// Info logs an informational line: cache hits, files found (§6.5).
func (l *Logger) Info(mark, mess string, args ...interface{}) { l.line("info", mark, mess, args) }

// Warn logs a warning line: a module not found on the search path (§6.5).
func (l *Logger) Warn(mark, mess string, args ...interface{}) { l.line("warn", mark, mess, args) }

// Error logs an error line: ambiguity, cycle, compile failure, arity
// mismatch, or read exception (§6.5).
func (l *Logger) Error(mark, mess string, args ...interface{}) { l.line("error", mark, mess, args) }
