package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewRejectsUnknownEnv(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "staging"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestNewProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(&buf, "prod")
	if err != nil {
		t.Fatal(err)
	}

	l.Warn("validation error", "service", "HandleCreateBook")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("error unmarshalling log line: %v", err)
	}

	if got["msg"] != "validation error" {
		t.Fatalf("expected %s, got %v", "validation error", got["msg"])
	}

	if got["service"] != "HandleCreateBook" {
		t.Fatalf("expected %s, got %v", "HandleCreateBook", got["service"])
	}

	if got["app"] != "readinglist" {
		t.Fatalf("expected %s, got %v", "readinglist", got["app"])
	}
}

func TestNewDevWritesText(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(&buf, "dev")
	if err != nil {
		t.Fatal(err)
	}

	l.Info("server startup")

	if !strings.Contains(buf.String(), "msg=\"server startup\"") {
		t.Fatalf("expected text log line, got %s", buf.String())
	}
}
