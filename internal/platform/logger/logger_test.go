package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "petify-api", Output: &buf})

	log.With(map[string]any{"module": "payments"}).Info("payment refunded", map[string]any{
		"amount": 30,
		"err":    errors.New("boom"),
		"":       "dropped",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["msg"] != "payment refunded" || entry["app"] != "petify-api" || entry["module"] != "payments" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["err"] != "boom" {
		t.Fatalf("errors must be logged as text, got %v", entry["err"])
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty keys must be dropped")
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts field")
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Output: &buf})

	log.Info("hidden", nil)
	log.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestParse(t *testing.T) {
	if ParseLevel(" DEBUG ") != Debug || ParseLevel("warning") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
