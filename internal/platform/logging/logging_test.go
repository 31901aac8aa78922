package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lotus/internal/platform/logging"
)

func TestNewWritesJSONToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "lotus.log")
	logger, err := logging.New(path, "info", false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("store loaded")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(raw)
	if !strings.Contains(text, `"msg":"store loaded"`) {
		t.Fatalf("expected info entry, got %s", text)
	}
	if strings.Contains(text, "hidden") {
		t.Fatalf("debug entry should be filtered at info level: %s", text)
	}
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "lotus.log")
	logger, err := logging.New(path, "error", true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("drag started")
	_ = logger.Sync()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "drag started") {
		t.Fatalf("expected debug entry with verbose, got %s", raw)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, err := logging.New(filepath.Join(t.TempDir(), "x.log"), "loud", false); err == nil {
		t.Fatalf("expected level parse error")
	}
}

func TestOrNop(t *testing.T) {
	t.Parallel()
	if logging.OrNop(nil) == nil {
		t.Fatalf("expected a no-op logger")
	}
}
