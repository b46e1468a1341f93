package balancecurve

import (
	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Panel

// A Geom draws something on a Panel.
type Geom interface {
	Draw(p *Panel) error
}

// A Panel is the drawing area of a Plot.
// Geoms address it in canvas coordinates with y measured from the top, the
// coordinates produced by Normalize.
type Panel struct {
	Plot   *Plot
	Canvas draw.Canvas
}

// Dimensions returns the size of p's canvas.
func (p *Panel) Dimensions() Dimensions {
	size := p.Canvas.Rectangle.Size()
	return Dimensions{Width: float64(size.X), Height: float64(size.Y)}
}

// Style returns the style of p's plot.
func (p *Panel) Style() Style {
	return p.Plot.Style
}

// Options returns the normalization options of p's plot.
func (p *Panel) Options() Options {
	return p.Plot.Options
}

// Logger returns the logger of p's plot.
func (p *Panel) Logger() *log.Logger {
	return p.Plot.logger()
}

// MapXY maps the canvas coordinate (x,y), y measured from the top, to a
// point on p's canvas.
func (p *Panel) MapXY(x, y float64) vg.Point {
	return vg.Point{
		X: p.Canvas.Min.X + vg.Length(x),
		Y: p.Canvas.Max.Y - vg.Length(y),
	}
}

// MapPath maps all positions and control points of path with MapXY.
func (p *Panel) MapPath(path vg.Path) vg.Path {
	mapped := make(vg.Path, len(path))
	for i, c := range path {
		mapped[i] = c
		mapped[i].Pos = p.MapXY(float64(c.Pos.X), float64(c.Pos.Y))
		if c.Control != nil {
			mapped[i].Control = make([]vg.Point, len(c.Control))
			for j, cp := range c.Control {
				mapped[i].Control[j] = p.MapXY(float64(cp.X), float64(cp.Y))
			}
		}
	}
	return mapped
}

// StrokePath strokes path, given in panel coordinates, with sty.
func (p *Panel) StrokePath(path vg.Path, sty draw.LineStyle) {
	if len(path) == 0 || sty.Color == nil || sty.Width <= 0 {
		return
	}
	p.Canvas.SetLineStyle(sty)
	p.Canvas.Stroke(p.MapPath(path))
}

// DrawGlyph draws a glyph at (x,y) given in panel coordinates.
func (p *Panel) DrawGlyph(sty draw.GlyphStyle, x, y float64) {
	if sty.Radius <= 0 || sty.Shape == nil {
		return
	}
	p.Canvas.DrawGlyph(sty, p.MapXY(x, y))
}

func (p *Panel) fillBackground() {
	bg := p.Plot.Style.Background
	if bg == nil {
		return
	}
	p.Canvas.SetColor(bg)
	p.Canvas.Fill(p.Canvas.Rectangle.Path())
}
