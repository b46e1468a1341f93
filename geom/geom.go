// Package geom provides the geometric objects which draw a balance series
// on a balancecurve.Panel.
//
// Each geom normalizes its series onto the panel it is drawn on, so the same
// geom can be drawn onto panels of different size. Styles left zero in a
// geom are taken from the plot's Style.
package geom

import (
	"github.com/vdobler/balancecurve"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Curve

// Curve draws the series as one continuous path.
type Curve struct {
	Series   balancecurve.Series
	Labels   balancecurve.Labels
	Strategy balancecurve.Strategy

	Default draw.LineStyle
}

var _ balancecurve.Geom = Curve{}

// Draw implements balancecurve.Geom.
func (c Curve) Draw(panel *balancecurve.Panel) error {
	xys, err := normalize(panel, c.Series, c.Labels)
	if err != nil {
		return err
	}
	path, err := balancecurve.BuildCurve(xys, c.Strategy)
	if err != nil {
		return err
	}
	panel.StrokePath(path, lineStyle(c.Default, panel))
	return nil
}

// ----------------------------------------------------------------------------
// Point

// Point draws a symbol at every sample of the series.
type Point struct {
	Series balancecurve.Series
	Labels balancecurve.Labels

	// Alpha, if set, scales the opacity of the symbol of sample i.
	// Values outside [0,1] suppress the symbol.
	Alpha Aesthetic

	Default draw.GlyphStyle
}

var _ balancecurve.Geom = Point{}

// Draw implements balancecurve.Geom.
func (p Point) Draw(panel *balancecurve.Panel) error {
	xys, err := normalize(panel, p.Series, p.Labels)
	if err != nil {
		return err
	}
	sty := glyphStyle(p.Default, panel)
	if sty.Color == nil || sty.Radius <= 0 {
		return nil
	}
	for i, xy := range xys {
		s := sty
		col, ok := determineColor(sty.Color, i, p.Alpha)
		if !ok {
			continue
		}
		s.Color = col
		panel.DrawGlyph(s, xy.X, xy.Y)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Level

// Level draws a horizontal line at a fixed balance, e.g. zero, in the
// vertical scale of Series. Nothing is drawn if the balance lies outside
// the range of the series.
type Level struct {
	Series  balancecurve.Series
	Balance float64

	Default draw.LineStyle
}

var _ balancecurve.Geom = Level{}

// Draw implements balancecurve.Geom.
func (l Level) Draw(panel *balancecurve.Panel) error {
	if err := plotter.CheckFloats(l.Balance); err != nil {
		return &balancecurve.InvalidInputError{Field: "level", Err: err}
	}
	// Normalizing the series with the level appended yields the
	// level's position in the series' own scale if it lies within range.
	data := balancecurve.SeriesRange(l.Series)
	if !data.IsSet() || !data.Contains(l.Balance) {
		panel.Logger().Debug("level outside of series range", "balance", l.Balance, "range", data)
		return nil
	}
	ext := append(append(balancecurve.Series(nil), l.Series...), l.Balance)
	xys, err := normalize(panel, ext, nil)
	if err != nil {
		return err
	}
	y := xys[len(xys)-1].Y
	dims := panel.Dimensions()
	path := make(vg.Path, 0, 2)
	path.Move(point(0, y))
	path.Line(point(dims.Width, y))
	panel.StrokePath(path, lineStyle(l.Default, panel))
	return nil
}

func normalize(panel *balancecurve.Panel, series balancecurve.Series, labels balancecurve.Labels) (plotter.XYs, error) {
	if data := balancecurve.SeriesRange(series); data.Degenerate() && !panel.Options().Strict {
		panel.Logger().Debug("series without range drawn on the midline", "value", data.Min)
	}
	return balancecurve.NormalizeWith(panel.Options(), series, labels, panel.Dimensions())
}
