package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/balancecurve"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Aesthetic is a function mapping a certain sample to an aesthetic.
type Aesthetic func(i int) float64

// lineStyle completes def with the plot's line style. Dashes are taken
// over only together with the color.
func lineStyle(def draw.LineStyle, panel *balancecurve.Panel) draw.LineStyle {
	plotLine := panel.Style().Line
	if def.Color == nil {
		def.Color = plotLine.Color
		def.Dashes, def.DashOffs = plotLine.Dashes, plotLine.DashOffs
	}
	if def.Width == 0 {
		def.Width = plotLine.Width
	}
	return def
}

// glyphStyle completes def with the plot's marker style.
func glyphStyle(def draw.GlyphStyle, panel *balancecurve.Panel) draw.GlyphStyle {
	marker := panel.Style().Marker
	if def.Color == nil {
		def.Color = marker.Color
	}
	if def.Radius == 0 {
		def.Radius = marker.Radius
	}
	if def.Shape == nil {
		def.Shape = marker.Shape
	}
	if def.Shape == nil {
		def.Shape = draw.CircleGlyph{}
	}
	return def
}

func determineColor(col color.Color, i int, alphaF Aesthetic) (color.Color, bool) {
	if col == nil {
		return col, false
	}

	if alphaF != nil {
		alpha := alphaF(i)
		if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
			return col, false
		}
		r, g, b, a := col.RGBA()
		// RGBA is premultiplied; scaling all channels keeps it so.
		col = color.RGBA64{
			R: uint16(float64(r) * alpha),
			G: uint16(float64(g) * alpha),
			B: uint16(float64(b) * alpha),
			A: uint16(float64(a) * alpha),
		}
	}

	return col, true
}

func point(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(y)}
}
