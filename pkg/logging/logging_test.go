package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "nsp", "nsp.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestSetupWritesToConsole(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Verbosity: 1, Console: &buf, NoColor: true, DisableFile: true})

	logger := GetLogger("test.component")
	logger.Info().Str("template", "go").Msg("materializing")

	out := buf.String()
	if !strings.Contains(out, "materializing") {
		t.Errorf("console output missing message: %q", out)
	}
	if !strings.Contains(out, "component=test.component") {
		t.Errorf("console output missing component field: %q", out)
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	if got, want := getLogFilePath(), filepath.Join("/custom/state", "nsp", "nsp.log"); got != want {
		t.Errorf("getLogFilePath() = %s, want %s", got, want)
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Verbosity: 2, Console: &buf, NoColor: true, DisableFile: true})

	done := LogOperationStart(log.Logger, "plan")
	done()

	out := buf.String()
	if !strings.Contains(out, "Operation started") || !strings.Contains(out, "Operation completed") {
		t.Errorf("unexpected output: %q", out)
	}
}
