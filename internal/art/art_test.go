package art_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Dicklesworthstone/turtle_troubles/internal/art"
)

func TestOutlinePathData(t *testing.T) {
	gt.Value(t, art.Turtle.Outline.D()).
		Equal("M50 10 C70 10 85 25 85 45 C85 65 70 80 50 80 C30 80 15 65 15 45 C15 25 30 10 50 10 Z")
	gt.Value(t, art.Turtle.Smile.D()).Equal("M35 60 C40 70 60 70 65 60")
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, art.Turtle.WriteSVG(&buf, 96)).Required()

	out := buf.String()
	gt.String(t, out).Contains("<svg")
	gt.String(t, out).Contains(`viewBox="0 0 100 100"`)
	gt.String(t, out).Contains(art.Turtle.Outline.D())
	gt.String(t, out).Contains(`cx="35"`)
	gt.String(t, out).Contains(`cx="65"`)
	gt.String(t, out).Contains("stroke-width:3")
	gt.String(t, out).Contains("</svg>")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, art.Turtle.WritePNG(&buf, 64)).Required()
	gt.Bool(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n"))).True()
}

func TestWriteRejectsBadSize(t *testing.T) {
	var buf bytes.Buffer
	gt.Value(t, art.Turtle.WriteSVG(&buf, 0)).NotNil()
	gt.Value(t, art.Turtle.WritePNG(&buf, -1)).NotNil()
}

func TestWritePNGRejectsBadColor(t *testing.T) {
	d := art.Turtle
	d.Color = "white"
	var buf bytes.Buffer
	gt.Value(t, d.WritePNG(&buf, 16)).NotNil()
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriterError(t *testing.T) {
	err := art.Turtle.WriteSVG(failWriter{}, 32)
	gt.Value(t, err).NotNil()
}

func TestGlyphIsRectangular(t *testing.T) {
	lines := art.Glyph()
	gt.Array(t, lines).Length(5)
	for _, l := range lines {
		gt.Value(t, len(l)).Equal(len(lines[0]))
	}
	gt.Value(t, strings.Count(lines[1], "O")).Equal(len(art.Turtle.Eyes))
	gt.String(t, lines[3]).Contains(`\____/`)
}
