package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew_JSONFormatInProduction(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Environment: "production"})

	log.Info("session restored", "user_id", "user-1")

	out := buf.String()
	if !strings.Contains(out, `"msg":"session restored"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"user_id":"user-1"`) {
		t.Errorf("expected attribute in JSON output, got %q", out)
	}
}

func TestNew_TextFormatCarriesAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "text"})

	log.Warn("notification merge skipped", "recipient", "user-2")

	out := buf.String()
	if !strings.Contains(out, "notification merge skipped") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "recipient=user-2") {
		t.Errorf("expected key=value attribute, got %q", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "text", Level: slog.LevelWarn})

	log.Debug("noise")
	log.Info("more noise")
	log.Error("signal")

	out := buf.String()
	if strings.Contains(out, "noise") {
		t.Errorf("levels below warn should be filtered, got %q", out)
	}
	if !strings.Contains(out, "signal") {
		t.Errorf("error level should pass, got %q", out)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "text"})

	log.WithError(errTest{}).Error("request failed")

	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("expected error attribute, got %q", buf.String())
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }
