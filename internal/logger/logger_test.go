package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitConsoleOnly(t *testing.T) {
	if err := Init("debug", ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log == nil || Sugar == nil {
		t.Fatal("expected Log and Sugar to be set after Init")
	}

	Sugar.Debugw("debug message", "key", "value")
	Sync()
}

func TestInitWithFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "rigkit.log")

	if err := InitWithFileConfig("info", DefaultFileConfig(logPath), false); err != nil {
		t.Fatalf("InitWithFileConfig failed: %v", err)
	}

	Sugar.Infow("file message", "tick", 42)
	Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log file to contain output")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("out.log")
	if cfg.Path != "out.log" {
		t.Errorf("expected path out.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation defaults: %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected compression enabled by default")
	}
}
