package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	l := New(Info, &buf, false)
	l.Info("cut detected", "frame", 42, "timestamp", 1.5)

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output not valid JSON: %v (%s)", err, buf.String())
	}
	if rec["message"] != "cut detected" {
		t.Fatalf("message = %v, want %q", rec["message"], "cut detected")
	}
	if rec["frame"] != float64(42) {
		t.Fatalf("frame = %v, want 42", rec["frame"])
	}
}

func TestSuppressBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Warning, &buf, true)
	l.Debug("should not appear")
	l.Info("should not appear either")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below configured level, got %q", buf.String())
	}
	l.Warning("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected warning-level message to be written, got %q", buf.String())
	}
}

func TestNoOp(t *testing.T) {
	l := NoOp()
	l.Debug("x")
	l.Info("x")
	l.Warning("x")
	l.Error("x")
	// Fatal intentionally not called: NoOp's Fatal must still not panic,
	// but zerolog's Fatal would os.Exit; NoOp's does nothing.
}
