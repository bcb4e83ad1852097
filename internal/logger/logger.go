// Package logger stores lines of text in memory and appends them to a file
// on disk. The demo uses it to keep a record of frame statistics across runs.
package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger accumulates timestamped lines. Safe for concurrent use.
type Logger struct {
	path string

	mu    sync.Mutex
	lines []string
}

// New returns a Logger appending to the given file and ensures its directory
// exists. An empty path keeps the log in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path}
}

// Log appends a line, prefixed with a local timestamp, to memory and to the
// log file. File errors are ignored; logging must never fail the caller.
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
