// Package logger provides the trace logger used by the grammar engine.
// The parser core emits nothing on its own; callers opt in to debug
// output, so the default level is off. The logger is safe for concurrent
// use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelDebug enables grammar trace output.
	LevelDebug
)

// Logger is a leveled trace logger. The level is fixed at construction,
// so all methods are safe for concurrent use without locking.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level: level,
		out:   log.New(out, "[cooklang] ", log.Ltime),
	}
}

// Debug logs a trace message. No-op unless the level is LevelDebug.
func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LevelDebug {
		l.out.Output(2, fmt.Sprintf(format, args...))
	}
}
