package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestLogger_BasicLogging(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	_ = logger.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	logContent := string(content)
	for _, want := range []string{
		"DEBUG: debug message",
		"INFO: info message",
		"WARN: warning message",
		"ERROR: error message",
	} {
		if !strings.Contains(logContent, want) {
			t.Errorf("%q not found in log", want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below Warn should be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "warning message") || !strings.Contains(out, "error message") {
		t.Errorf("Warn and Error should be present, got:\n%s", out)
	}
}

func TestLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)
	logger.now = fixedClock

	logger.Info("dispatch %s matched", "abc")

	want := "[2026-01-02 03:04:05] INFO: dispatch abc matched\n"
	if buf.String() != want {
		t.Errorf("line = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriter(&buf, LevelDebug)
	root.now = fixedClock

	root.Named("dispatch").Named("async").Warn("queue full")

	want := "[2026-01-02 03:04:05] WARN: dispatch.async: queue full\n"
	if buf.String() != want {
		t.Errorf("line = %q, want %q", buf.String(), want)
	}
}

func TestLogger_NamedConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriter(&buf, LevelDebug)
	child := root.Named("worker")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); root.Info("root line") }()
		go func() { defer wg.Done(); child.Info("child line") }()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Fatalf("got %d lines, want 100", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "root line") && !strings.HasSuffix(line, "worker: child line") {
			t.Errorf("interleaved line: %q", line)
		}
	}
}

func TestLogger_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("test message")
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Mode().Perm() != os.FileMode(0600) {
		t.Errorf("Log file permissions = %o, want 600", info.Mode().Perm())
	}
}

func TestLogger_AppendMode(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "logs", "test.log")

	for _, msg := range []string{"first", "second"} {
		logger, err := New(logPath, LevelInfo)
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		logger.Info("%s", msg)
		_ = logger.Close()
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "first") || !strings.Contains(string(content), "second") {
		t.Errorf("both runs should be in the log, got:\n%s", content)
	}
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	logger.SetEnabled(false)
	logger.Error("hidden")
	logger.SetEnabled(true)
	logger.Error("visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("disabled logger should not write")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("re-enabled logger should write")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{" Info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelWarn},
		{"verbose", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	w := logger.Writer(LevelWarn)
	n, err := w.Write([]byte("from writer\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len("from writer\n") {
		t.Errorf("Write returned %d", n)
	}
	if !strings.Contains(buf.String(), "WARN: from writer\n") {
		t.Errorf("writer output missing, got %q", buf.String())
	}
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger

	// None of these should panic
	logger.Info("x")
	logger.SetEnabled(true)
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger = %v", err)
	}
	if logger.Named("x") != nil {
		t.Error("Named on nil logger should be nil")
	}
}

func TestGlobalLogger(t *testing.T) {
	saved := GetLogger()
	defer SetDefault(saved)

	SetDefault(nil)
	Info("dropped")
	if err := Close(); err != nil {
		t.Errorf("Close() with no default = %v", err)
	}

	var buf bytes.Buffer
	SetDefault(NewWriter(&buf, LevelDebug))
	Debug("debug message")
	Error("error message")

	if !strings.Contains(buf.String(), "debug message") || !strings.Contains(buf.String(), "error message") {
		t.Errorf("default logger output missing, got:\n%s", buf.String())
	}
}

func TestInit(t *testing.T) {
	saved := GetLogger()
	defer SetDefault(saved)

	logPath := filepath.Join(t.TempDir(), "init.log")
	if err := Init(logPath, LevelInfo); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Info("hello")
	_ = Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "INFO: hello") {
		t.Errorf("log = %q", content)
	}
}

func TestNopLogger(t *testing.T) {
	var l NopLogger
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
