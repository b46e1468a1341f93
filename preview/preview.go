// Package preview renders a balance curve as braille text for terminals.
package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/vdobler/balancecurve"
	"gonum.org/v1/plot/vg"
)

// Steps is the number of line pieces a cubic segment is flattened into.
const Steps = 12

// Braille draws path, given in coordinates of a canvas of size dims with y
// measured from the top, on cols x rows braille cells.
func Braille(path vg.Path, dims balancecurve.Dimensions, cols, rows int) ([]string, error) {
	if cols <= 0 || rows <= 0 {
		return nil, &balancecurve.InvalidInputError{
			Field: "preview size",
			Err:   errors.Newf("%d x %d cells", cols, rows),
		}
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	d := newDots(cols, rows)
	sx := float64(d.width()-1) / dims.Width
	sy := float64(d.height()-1) / dims.Height
	xmax, ymax := float64(d.width()-1), float64(d.height()-1)
	scale := func(p vg.Point) (float64, float64) {
		return float64(p.X) * sx, float64(p.Y) * sy
	}

	for _, piece := range flatten(path) {
		x0, y0 := scale(piece[0])
		x1, y1 := scale(piece[1])
		x0, y0, x1, y1, ok := clip(x0, y0, x1, y1, xmax, ymax)
		if !ok {
			continue
		}
		d.line(round(x0), round(y0), round(x1), round(y1))
	}
	if len(path) == 1 {
		x, y := scale(path[0].Pos)
		if x >= 0 && x <= xmax && y >= 0 && y <= ymax {
			d.set(round(x), round(y))
		}
	}
	return d.lines(), nil
}

func round(v float64) int { return int(math.Round(v)) }

// clip cuts the line from (x0,y0) to (x1,y1) to the rectangle
// [0,xmax] x [0,ymax] (Liang-Barsky). ok is false if nothing of the line
// lies inside or a coordinate is not finite.
func clip(x0, y0, x1, y1, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dx, dy := x1-x0, y1-y0
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return 0, 0, 0, 0, false
	}
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{{-dx, x0}, {dx, xmax - x0}, {-dy, y0}, {dy, ymax - y0}} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	cx0, cy0 := x0+t0*dx, y0+t0*dy
	cx1, cy1 := x0+t1*dx, y0+t1*dy
	return clamp(cx0, xmax), clamp(cy0, ymax), clamp(cx1, xmax), clamp(cy1, ymax), true
}

// clamp removes rounding residue of clip.
func clamp(v, hi float64) float64 {
	return math.Max(0, math.Min(v, hi))
}

// flatten approximates path by straight pieces.
func flatten(path vg.Path) [][2]vg.Point {
	var pieces [][2]vg.Point
	var start, current vg.Point
	for _, c := range path {
		switch c.Type {
		case vg.MoveComp:
			start, current = c.Pos, c.Pos
		case vg.CurveComp:
			prev := current
			for k := 1; k <= Steps; k++ {
				p := balancecurve.SegmentAt(current, c, float64(k)/Steps)
				pieces = append(pieces, [2]vg.Point{prev, p})
				prev = p
			}
			current = c.Pos
		case vg.CloseComp:
			pieces = append(pieces, [2]vg.Point{current, start})
			current = start
		default:
			pieces = append(pieces, [2]vg.Point{current, c.Pos})
			current = c.Pos
		}
	}
	return pieces
}

// Box frames the preview lines with a rounded border, a title above and a
// caption below. Empty title or caption are left out.
func Box(lines []string, title, caption string) string {
	var parts []string
	if title != "" {
		parts = append(parts, titleStyle.Render(title))
	}
	parts = append(parts, boxStyle.Render(curveStyle.Render(strings.Join(lines, "\n"))))
	if caption != "" {
		parts = append(parts, captionStyle.Render(caption))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
