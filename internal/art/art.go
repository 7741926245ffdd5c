// Package art describes the small turtle drawing that decorates the fun
// fact panel and renders it as SVG, PNG or terminal text.
package art

import (
	"fmt"
	"io"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"github.com/m-mizutani/goerr/v2"
)

// ViewBox is the side of the square coordinate space the shapes use.
const ViewBox = 100

// Point is a coordinate in the 100x100 view box.
type Point struct{ X, Y float64 }

// Cubic is one cubic Bézier segment ending at To.
type Cubic struct{ C1, C2, To Point }

// Path is a start point followed by cubic segments.
type Path struct {
	Start    Point
	Segments []Cubic
	Closed   bool
}

// Circle is a filled circle.
type Circle struct {
	Center Point
	R      float64
}

// Drawing is the full decoration: a filled outline, filled eyes and a
// stroked smile.
type Drawing struct {
	Outline     Path
	Eyes        []Circle
	Smile       Path
	StrokeWidth float64
	Color       string // #RRGGBB
}

// Turtle is the panel decoration.
var Turtle = Drawing{
	Outline: Path{
		Start: Point{50, 10},
		Segments: []Cubic{
			{Point{70, 10}, Point{85, 25}, Point{85, 45}},
			{Point{85, 65}, Point{70, 80}, Point{50, 80}},
			{Point{30, 80}, Point{15, 65}, Point{15, 45}},
			{Point{15, 25}, Point{30, 10}, Point{50, 10}},
		},
		Closed: true,
	},
	Eyes: []Circle{
		{Center: Point{35, 40}, R: 5},
		{Center: Point{65, 40}, R: 5},
	},
	Smile: Path{
		Start: Point{35, 60},
		Segments: []Cubic{
			{Point{40, 70}, Point{60, 70}, Point{65, 60}},
		},
	},
	StrokeWidth: 3,
	Color:       "#ffffff",
}

// D renders p as SVG path data.
func (p Path) D() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%g %g", p.Start.X, p.Start.Y)
	for _, s := range p.Segments {
		fmt.Fprintf(&b, " C%g %g %g %g %g %g", s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	}
	if p.Closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// WriteSVG writes d as a standalone SVG document of size x size pixels.
func (d Drawing) WriteSVG(w io.Writer, size int) error {
	if size <= 0 {
		return goerr.New("size must be positive", goerr.V("size", size))
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(size, size, 0, 0, ViewBox, ViewBox)
	canvas.Path(d.Outline.D(), "fill:"+d.Color)
	for _, e := range d.Eyes {
		canvas.Circle(int(e.Center.X), int(e.Center.Y), int(e.R), "fill:"+d.Color)
	}
	canvas.Path(d.Smile.D(), fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none", d.Color, d.StrokeWidth))
	canvas.End()
	if ew.err != nil {
		return goerr.Wrap(ew.err, "failed to write svg")
	}
	return nil
}

// WritePNG rasterises d at size x size pixels on a transparent background.
func (d Drawing) WritePNG(w io.Writer, size int) error {
	if size <= 0 {
		return goerr.New("size must be positive", goerr.V("size", size))
	}
	r, g, b, err := parseHex(d.Color)
	if err != nil {
		return err
	}

	dc := gg.NewContext(size, size)
	scale := float64(size) / ViewBox
	dc.Scale(scale, scale)
	dc.SetRGB(r, g, b)

	tracePath(dc, d.Outline)
	dc.Fill()

	for _, e := range d.Eyes {
		dc.DrawCircle(e.Center.X, e.Center.Y, e.R)
		dc.Fill()
	}

	tracePath(dc, d.Smile)
	dc.SetLineWidth(d.StrokeWidth)
	dc.Stroke()

	if err := dc.EncodePNG(w); err != nil {
		return goerr.Wrap(err, "failed to encode png")
	}
	return nil
}

func tracePath(dc *gg.Context, p Path) {
	dc.MoveTo(p.Start.X, p.Start.Y)
	for _, s := range p.Segments {
		dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	}
	if p.Closed {
		dc.ClosePath()
	}
}

func parseHex(c string) (r, g, b float64, err error) {
	var ri, gi, bi uint8
	if _, err := fmt.Sscanf(c, "#%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return 0, 0, 0, goerr.Wrap(err, "invalid drawing color", goerr.V("color", c))
	}
	return float64(ri) / 255, float64(gi) / 255, float64(bi) / 255, nil
}

// svgo does not report write errors, so the first one is kept here.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Glyph is Turtle in text cells: the rounded head, two eyes on one row
// and the smile below them.
func Glyph() []string {
	return []string{
		`    .--------.      `,
		`   /  O    O  \     `,
		`  |            |    `,
		`   \  \____/  /     `,
		`    '--------'      `,
	}
}
