package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected logging.Format
		wantErr  bool
	}{
		{"console", logging.FormatConsole, false},
		{"json", logging.FormatJSON, false},
		{"auto", logging.FormatAuto, false},
		{"", logging.FormatAuto, false},
		{"xml", logging.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := logging.ParseFormat(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, f, tt.expected)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLogLevel("debug"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLogLevel(""), slog.LevelInfo)
	gt.Equal(t, logging.ParseLogLevel("WARNING"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLogLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLogLevel("verbose"), slog.LevelInfo)
}

func TestNewLogger_AutoFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)
	logger.Info("hello", "week", 12)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	gt.Equal(t, entry["msg"], any("hello"))
	gt.Equal(t, entry["week"], any(float64(12)))
}

func TestNewLoggerWithFormat_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelWarn, &buf, logging.FormatJSON)
	logger.Info("dropped")
	gt.Equal(t, buf.Len(), 0)

	logger.Warn("kept")
	gt.True(t, buf.Len() > 0)
}
