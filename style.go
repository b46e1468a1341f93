package balancecurve

import (
	"image/color"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BlendMode determines how the curve is composed onto the background.
type BlendMode int

const (
	// Normal paints the curve over the background.
	Normal BlendMode = iota
	// Multiply multiplies curve and background colors, which darkens
	// where both are present. Only raster formats support it.
	Multiply
)

var blendModeNames = []string{"normal", "multiply"}

// String returns the name of b.
func (b BlendMode) String() string {
	if b < 0 || int(b) >= len(blendModeNames) {
		return "unknown"
	}
	return blendModeNames[b]
}

// ParseBlendMode returns the blend mode called name. The empty name is Normal.
func ParseBlendMode(name string) (BlendMode, error) {
	if name == "" {
		return Normal, nil
	}
	for i, n := range blendModeNames {
		if strings.EqualFold(n, name) {
			return BlendMode(i), nil
		}
	}
	return Normal, errors.Newf("unknown blend mode %q", name)
}

// LightBlue is the CSS color lightblue.
var LightBlue = color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}

// A Style controls how a Plot is drawn.
type Style struct {
	// Background fills the whole canvas. Nil leaves it untouched.
	Background color.Color

	// Line is used for curves unless a geom sets its own.
	Line draw.LineStyle

	// Marker is used for points unless a geom sets its own.
	// A zero Radius draws no markers.
	Marker draw.GlyphStyle

	// Blend is the blend mode of all geoms against the background.
	Blend BlendMode
}

// DefaultStyle returns the style of the balance chart: a 5 unit wide light
// blue stroke multiplied onto a white background.
func DefaultStyle() Style {
	return Style{
		Background: color.White,
		Line: draw.LineStyle{
			Color: LightBlue,
			Width: vg.Length(5),
		},
		Marker: draw.GlyphStyle{
			Color:  LightBlue,
			Radius: 0,
			Shape:  draw.CircleGlyph{},
		},
		Blend: Multiply,
	}
}
