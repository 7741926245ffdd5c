package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Dicklesworthstone/turtle_troubles/internal/logging"
)

func TestNewWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, slog.LevelInfo)
	l.Info("fact advanced", "index", 2)
	l.Debug("hidden")

	gt.String(t, buf.String()).Contains("fact advanced")
	gt.Bool(t, bytes.Contains(buf.Bytes(), []byte("hidden"))).False()
}

func TestConfigureFileSink(t *testing.T) {
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "turtles.log")
	cfg := logging.Config{File: path, Level: "debug"}
	closer, err := cfg.Configure()
	gt.NoError(t, err).Required()

	logging.Default().Debug("tab selected", "category", "beach")
	closer()

	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.String(t, string(data)).Contains("tab selected")
}

func TestConfigureRejectsBadLevel(t *testing.T) {
	cfg := logging.Config{Level: "loud"}
	_, err := cfg.Configure()
	gt.Value(t, err).NotNil()
}
