package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleFormatsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("batch analyzed", "files", 12, "folder", "/tmp/batch dir")

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level in %q", line)
	}
	if !strings.Contains(line, "batch analyzed") {
		t.Fatalf("missing message in %q", line)
	}
	if !strings.Contains(line, "files=12") {
		t.Fatalf("missing attribute in %q", line)
	}
	if !strings.Contains(line, `folder="/tmp/batch dir"`) {
		t.Fatalf("values with spaces must be quoted: %q", line)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewConsoleGroupsPrefixKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithGroup("scan").Info("done", "files", 3)
	if !strings.Contains(buf.String(), "scan.files=3") {
		t.Fatalf("group prefix missing: %q", buf.String())
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("run complete", "findings", 2)

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["msg"] != "run complete" {
		t.Fatalf("unexpected msg: %v", decoded["msg"])
	}
	if decoded["findings"] != float64(2) {
		t.Fatalf("unexpected findings attr: %v", decoded["findings"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml", Output: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestNewNopIsSilent(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger must be disabled at every level")
	}
	logger.Error("ignored")
}
