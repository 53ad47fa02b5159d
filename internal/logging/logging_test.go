package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json")
	log.Info().Str("cnpj", "11222333000181").Msg("validated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if entry["cnpj"] != "11222333000181" || entry["message"] != "validated" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text")
	log.Warn().Msg("row rejected")
	if !strings.Contains(buf.String(), "row rejected") {
		t.Errorf("unexpected output: %q", buf.String())
	}
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Error("text format should not emit JSON")
	}
}
