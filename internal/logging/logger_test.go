package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/picsort/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger(): %v", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("Close(): %v", err)
	}
}

func TestLogger_FileSink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "picsort.log")

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger(): %v", err)
	}

	log.Info("imported %d files", 3)
	log.Warn("one warning")
	log.Debug(false, "must not appear")

	if err := log.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "[INFO] imported 3 files") {
		t.Errorf("log file missing info line:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] one warning") {
		t.Errorf("log file missing warn line:\n%s", out)
	}
	if strings.Contains(out, "must not appear") {
		t.Errorf("debug line leaked into log file:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("file sink must be uncolored:\n%s", out)
	}
}

func TestLogger_CloseIdempotent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "a.log")

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger(): %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("first Close(): %v", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("second Close(): %v", err)
	}
}
