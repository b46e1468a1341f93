package balancecurve

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Strategy

// Strategy selects how BuildCurve connects consecutive points.
type Strategy int

const (
	// SmoothCubic connects points by cubic segments whose control
	// points lie at a third and two thirds of the straight line.
	SmoothCubic Strategy = iota
	// Straight connects points by line segments.
	Straight
)

var strategyNames = []string{"smooth-cubic", "straight"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the strategy called name.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return 0, &InvalidInputError{Field: "strategy", Err: errors.Newf("unknown strategy %q", name)}
}

// ----------------------------------------------------------------------------
// Curve construction

// BuildCurve returns a path through all points in order: a move to the first
// point followed by one segment per subsequent point. A single point yields
// a path consisting of the move only.
func BuildCurve(pts plotter.XYer, strategy Strategy) (vg.Path, error) {
	if strategy != SmoothCubic && strategy != Straight {
		return nil, &InvalidInputError{Field: "strategy", Err: errors.Newf("unknown strategy %d", int(strategy))}
	}
	n := pts.Len()
	if n == 0 {
		return nil, &InvalidInputError{Field: "points", Err: plotter.ErrNoData}
	}
	for i := 0; i < n; i++ {
		if err := plotter.CheckFloats(pts.XY(i)); err != nil {
			return nil, &InvalidInputError{Field: "points", Err: errors.Wrapf(err, "point %d", i)}
		}
	}

	path := make(vg.Path, 0, n)
	px, py := pts.XY(0)
	path.Move(point(px, py))
	for i := 1; i < n; i++ {
		nx, ny := pts.XY(i)
		switch strategy {
		case SmoothCubic:
			c1 := point(px+(nx-px)/3, py+(ny-py)/3)
			c2 := point(px+(nx-px)*2/3, py+(ny-py)*2/3)
			path.CubeTo(c1, c2, point(nx, ny))
		case Straight:
			path.Line(point(nx, ny))
		}
		px, py = nx, ny
	}
	return path, nil
}

// Transform normalizes series with the default options and builds the
// curve through the resulting points.
func Transform(series Series, labels Labels, dims Dimensions, strategy Strategy) (vg.Path, error) {
	return TransformWith(DefaultOptions(), series, labels, dims, strategy)
}

// TransformWith is like Transform with explicit normalization options.
func TransformWith(opts Options, series Series, labels Labels, dims Dimensions, strategy Strategy) (vg.Path, error) {
	xys, err := NormalizeWith(opts, series, labels, dims)
	if err != nil {
		return nil, err
	}
	return BuildCurve(xys, strategy)
}

func point(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(y)}
}

// ----------------------------------------------------------------------------
// Evaluation

// SegmentAt evaluates the path component comp, which starts at start, at
// the parameter t in [0,1]. Move components evaluate to their position.
// At t=0 and t=1 the start and end points are returned exactly.
func SegmentAt(start vg.Point, comp vg.PathComp, t float64) vg.Point {
	switch {
	case comp.Type == vg.LineComp:
		if t == 1 {
			return comp.Pos
		}
		return start.Add(comp.Pos.Sub(start).Scale(vg.Length(t)))
	case comp.Type == vg.CurveComp && len(comp.Control) == 2:
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		return vg.Point{
			X: vg.Length(a*float64(start.X) + b*float64(comp.Control[0].X) + c*float64(comp.Control[1].X) + d*float64(comp.Pos.X)),
			Y: vg.Length(a*float64(start.Y) + b*float64(comp.Control[0].Y) + c*float64(comp.Control[1].Y) + d*float64(comp.Pos.Y)),
		}
	case comp.Type == vg.CurveComp && len(comp.Control) == 1:
		mt := 1 - t
		a, b, c := mt*mt, 2*mt*t, t*t
		return vg.Point{
			X: vg.Length(a*float64(start.X) + b*float64(comp.Control[0].X) + c*float64(comp.Pos.X)),
			Y: vg.Length(a*float64(start.Y) + b*float64(comp.Control[0].Y) + c*float64(comp.Pos.Y)),
		}
	}
	return comp.Pos
}
