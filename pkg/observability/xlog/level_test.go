package xlog_test

import (
	"log/slog"
	"testing"

	"github.com/omeyang/xmacgen/pkg/observability/xlog"
)

func TestLevelConstants(t *testing.T) {
	tests := []struct {
		level    xlog.Level
		slogLvl  slog.Level
		wantName string
	}{
		{xlog.LevelDebug, slog.LevelDebug, "DEBUG"},
		{xlog.LevelInfo, slog.LevelInfo, "INFO"},
		{xlog.LevelWarn, slog.LevelWarn, "WARN"},
		{xlog.LevelError, slog.LevelError, "ERROR"},
	}

	for _, tt := range tests {
		if slog.Level(tt.level) != tt.slogLvl {
			t.Errorf("%s = %d, want slog equivalent %d", tt.wantName, tt.level, tt.slogLvl)
		}
		if tt.level.String() != tt.wantName {
			t.Errorf("String() = %q, want %q", tt.level.String(), tt.wantName)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  xlog.Level
		err   bool
	}{
		{"debug", xlog.LevelDebug, false},
		{"INFO", xlog.LevelInfo, false},
		{" warn ", xlog.LevelWarn, false},
		{"warning", xlog.LevelWarn, false},
		{"Error", xlog.LevelError, false},
		{"trace", xlog.LevelInfo, true},
		{"", xlog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := xlog.ParseLevel(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevel_UnmarshalText(t *testing.T) {
	var l xlog.Level
	if err := l.UnmarshalText([]byte("debug")); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if l != xlog.LevelDebug {
		t.Errorf("level = %v, want DEBUG", l)
	}
	if err := l.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) should fail")
	}
}
