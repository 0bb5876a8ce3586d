// Package logging provides the leveled, optionally colored logger used by
// the pipeline, with an optional append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/picsort/internal/config"
	"github.com/backmassage/picsort/internal/term"
)

// Logger writes leveled lines to stdout (errors to stderr) and, when a log
// file is configured, uncolored copies to that file.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// NewLogger configures terminal colors from cfg and optionally opens the
// log file. Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, ts+" ["+level+"] "+text+"\n")
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...any) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), routed to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...any) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
