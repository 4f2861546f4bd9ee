package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "Page updated",
			fields:  Fields{"page": "calendar"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "Rendered row",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "Generation failed",
			err:     errors.New("reading CSV"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			if logged := buf.Len() > 0; logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("Marker not found", Fields{"marker": "<!--Events-->"}, errors.New("missing"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "ERROR" {
		t.Errorf("Level = %q, want ERROR", entry.Level)
	}
	if entry.Message != "Marker not found" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Fields["marker"] != "<!--Events-->" {
		t.Errorf("Fields[marker] = %v", entry.Fields["marker"])
	}
	if entry.Error != "missing" {
		t.Errorf("Error = %q, want missing", entry.Error)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("entry should be newline terminated")
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn doesn't log at error", LevelError, LevelWarn, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(tt.minLevel, &buf).log(tt.logLevel, "test", nil, nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("DEBUG"); got != LevelDebug {
		t.Errorf("ParseLevel(DEBUG) = %v", got)
	}
	if got := ParseLevel("nonsense"); got != LevelInfo {
		t.Errorf("ParseLevel(nonsense) = %v, want INFO", got)
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("pages.updated")
	m.IncrCounter("pages.updated")
	m.AddCounter("rows.rendered", 5)

	snapshot := m.GetSnapshot()

	if snapshot.Counters["pages.updated"] != 2 {
		t.Errorf("pages.updated = %v, want 2", snapshot.Counters["pages.updated"])
	}
	if m.Counter("rows.rendered") != 5 {
		t.Errorf("rows.rendered = %v, want 5", m.Counter("rows.rendered"))
	}
	if names := snapshot.Names(); len(names) != 2 || names[0] != "pages.updated" {
		t.Errorf("Names() = %v", names)
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("page.calendar", 100*time.Millisecond)
	m.RecordTiming("page.calendar", 200*time.Millisecond)
	m.RecordTiming("page.calendar", 150*time.Millisecond)

	stats := m.GetSnapshot().Timings["page.calendar"]
	if stats.Count != 3 {
		t.Errorf("Count = %v, want 3", stats.Count)
	}
	if stats.Total != "450ms" {
		t.Errorf("Total = %v, want 450ms", stats.Total)
	}
	if stats.Max != "200ms" {
		t.Errorf("Max = %v, want 200ms", stats.Max)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(prev)

	Debug("test debug", Fields{"row": 3})
	SetDefault(New(LevelInfo, &buf))
	Debug("dropped", nil)

	if lines := strings.Count(buf.String(), "\n"); lines != 1 {
		t.Errorf("logged %d lines, want 1", lines)
	}
	if !strings.Contains(buf.String(), `"message":"test debug"`) {
		t.Errorf("Debug did not reach the default logger: %q", buf.String())
	}

	IncrCounter("test")
	RecordTiming("test", time.Second)

	if GetMetricsSnapshot().Counters["test"] < 1 {
		t.Error("package-level counter not recorded")
	}
}
