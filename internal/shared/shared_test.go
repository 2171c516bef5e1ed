package shared

import (
	"bytes"
	"testing"
)

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if len(a) != 36 {
		t.Errorf("expected uuid string of length 36, got %d", len(a))
	}
	if a == b {
		t.Error("expected distinct ids")
	}
}

func TestSessionID(t *testing.T) {
	id := SessionID()
	if len(id) != 8 {
		t.Errorf("expected 8 character session id, got %q", id)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hello", "key", "value")
	if buf.Len() == 0 {
		t.Error("expected log output")
	}

	t.Run("nil writer defaults", func(t *testing.T) {
		if NewLogger(nil) == nil {
			t.Error("expected logger with default writer")
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	path := t.TempDir() + "/logs/app.log"
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Info("written to file")
}
