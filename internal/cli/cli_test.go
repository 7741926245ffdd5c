package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Dicklesworthstone/turtle_troubles/internal/config"
	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app, closer := newApp("test", &buf, io.Discard)
	defer closer()
	err := app.Run(context.Background(), append([]string{"turtles"}, args...))
	return buf.String(), err
}

func TestCatalogJSON(t *testing.T) {
	out, err := runApp(t, "catalog", "--format", "json")
	gt.NoError(t, err).Required()

	var got map[string]any
	gt.NoError(t, json.Unmarshal([]byte(out), &got)).Required()
	gt.Map(t, got).HasKey("categories")
	gt.String(t, out).Contains(`"lights"`)
}

func TestCatalogYAML(t *testing.T) {
	out, err := runApp(t, "catalog", "--format", "yaml")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("action_tips:")
}

func TestCatalogMarkdown(t *testing.T) {
	out, err := runApp(t, "catalog")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("## Beach Dangers")
}

func TestCatalogRenderedMarkdown(t *testing.T) {
	out, err := runApp(t, "catalog", "--render", "--style", "notty")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("Coral Reef Damage")
}

func TestCatalogUnknownFormat(t *testing.T) {
	_, err := runApp(t, "catalog", "--format", "xml")
	gt.Value(t, err).NotNil()
}

func TestSnapshotCommand(t *testing.T) {
	out, err := runApp(t, "snapshot", "--category", "beach", "--expand", "lights", "--fact", "2", "--width", "120", "--plain")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("Light Pollution")
	gt.String(t, out).Contains("How You Can Help:")
	gt.String(t, out).Contains("(3/5)")
}

func TestSnapshotUsesConfigPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turtles.toml")
	gt.NoError(t, os.WriteFile(path, []byte("[palette]\nocean = \"#000000\"\n"), 0o644)).Required()

	out, err := runApp(t, "--config", path, "snapshot", "--plain", "--width", "90")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("Ocean Threats")
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	_, err := runApp(t, "snapshot", "--category", "desert")
	gt.Error(t, err).Is(config.ErrUnknownCategory)

	_, err = runApp(t, "snapshot", "--expand", "lights")
	gt.Value(t, err).NotNil()

	_, err = runApp(t, "snapshot", "--fact", "5")
	gt.Value(t, err).NotNil()
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turtles.toml")
	gt.NoError(t, os.WriteFile(path, []byte("[palette]\nbeach = \"gold\"\n"), 0o644)).Required()

	_, err := runApp(t, "--config", path, "catalog")
	gt.Error(t, err).Is(config.ErrInvalidColor)
}

func TestExportSVG(t *testing.T) {
	out, err := runApp(t, "export", "--size", "48")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("<svg")
	gt.String(t, out).Contains(`width="48"`)
}

func TestExportPNGToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turtle.png")
	_, err := runApp(t, "export", "--format", "png", "--output", path)
	gt.NoError(t, err).Required()

	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.Bool(t, bytes.HasPrefix(data, []byte("\x89PNG"))).True()
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := runApp(t, "export", "--format", "gif")
	gt.Value(t, err).NotNil()
}

func TestBuildState(t *testing.T) {
	st, err := buildState("beach", "lights", 2)
	gt.NoError(t, err).Required()
	gt.Value(t, st.Category).Equal(model.Beach)
	gt.Value(t, st.Expanded).Equal(model.ItemID("lights"))
	gt.Value(t, st.FactIndex).Equal(2)

	st, err = buildState("ocean", model.NoItem, 0)
	gt.NoError(t, err).Required()
	gt.Value(t, st.Expanded).Equal(model.NoItem)
}

func TestRunPrintsErrorsToStderr(t *testing.T) {
	testCases := map[string]struct {
		args []string
		want string
	}{
		"unknown category": {
			args: []string{"snapshot", "--category", "desert"},
			want: "unknown category",
		},
		"unknown catalog format": {
			args: []string{"catalog", "--format", "xml"},
			want: "unsupported catalog format",
		},
		"missing config file": {
			args: []string{"--config", filepath.Join(t.TempDir(), "none.toml"), "catalog"},
			want: "configuration file not found",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := Run(context.Background(), append([]string{"turtles"}, tc.args...), "test", &stdout, &stderr)
			gt.Value(t, code).Equal(1)
			gt.String(t, stderr.String()).Contains("error: ")
			gt.String(t, stderr.String()).Contains(tc.want)
		})
	}
}

func TestRunSucceedsQuietly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{"turtles", "catalog", "--format", "yaml"}, "test", &stdout, &stderr)
	gt.Value(t, code).Equal(0)
	gt.Value(t, stderr.String()).Equal("")
	gt.String(t, stdout.String()).Contains("categories:")
}

func TestTerminalWidthUsesWriter(t *testing.T) {
	gt.Value(t, terminalWidth(&bytes.Buffer{})).Equal(fallbackWidth)

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	gt.NoError(t, err).Required()
	defer f.Close()
	gt.Value(t, terminalWidth(f)).Equal(fallbackWidth)
}
