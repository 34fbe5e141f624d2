package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/cli"
)

func TestStatusCommand(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	imageDir := t.TempDir()

	t.Run("Creates placeholder catalog", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"pregtrack", "--log-format", "json", "--log-level", "error",
			"status",
			"--conception-date", "2025-01-01",
			"--data-dir", dataDir,
			"--image-dir", imageDir,
			"--json",
		})
		gt.NoError(t, err)

		_, err = os.Stat(filepath.Join(dataDir, "milestones.json"))
		gt.NoError(t, err)
		_, err = os.Stat(filepath.Join(dataDir, "size_comparisons.json"))
		gt.NoError(t, err)
	})

	t.Run("Missing reference date fails", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"pregtrack", "--log-format", "json", "--log-level", "error",
			"status",
			"--data-dir", dataDir,
		})
		gt.Error(t, err)
	})

	t.Run("Invalid log format fails", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"pregtrack", "--log-format", "xml", "status",
		})
		gt.Error(t, err)
	})
}

func TestStatusCommand_LogsConfigurationError(t *testing.T) {
	var buf bytes.Buffer
	err := cli.RunWithLogOutput(context.Background(), []string{
		"pregtrack", "--log-format", "json",
		"status",
		"--data-dir", t.TempDir(),
	}, &buf)
	gt.Error(t, err)

	var entry struct {
		Level string          `json:"level"`
		Msg   string          `json:"msg"`
		Error json.RawMessage `json:"error"`
	}
	line, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
	gt.NoError(t, json.Unmarshal(line, &entry)).Required()
	gt.Equal(t, entry.Level, "ERROR")
	gt.Equal(t, entry.Msg, "Invalid tracker configuration")
	gt.True(t, len(entry.Error) > 0)
}
