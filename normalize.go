package balancecurve

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/plotter"
)

// Options control Normalize.
type Options struct {
	// Margins are kept free of data at the top and bottom of the canvas.
	Margins Margins

	// Strict makes a series without vertical range an error
	// (a *DegenerateRangeError) instead of drawing it on the midline.
	Strict bool
}

// DefaultOptions returns the default normalization options.
func DefaultOptions() Options {
	return Options{Margins: DefaultMargins}
}

// Normalize is NormalizeWith(DefaultOptions(), series, labels, dims).
func Normalize(series Series, labels Labels, dims Dimensions) (plotter.XYs, error) {
	return NormalizeWith(DefaultOptions(), series, labels, dims)
}

// NormalizeWith maps series onto a canvas of size dims, y measured from the
// top. If labels is non-empty only the first min(len(series), len(labels))
// samples are mapped. The vertical scale is always taken from the full series.
//
// The inputs are not modified.
func NormalizeWith(opts Options, series Series, labels Labels, dims Dimensions) (plotter.XYs, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	band, err := opts.Margins.Band(dims)
	if err != nil {
		return nil, err
	}

	n := len(series)
	if len(labels) > 0 && len(labels) < n {
		n = len(labels)
	}
	if len(labels) > n {
		labels = labels[:n]
	}

	xs, err := resolveX(labels, n)
	if err != nil {
		return nil, err
	}

	xys := make(plotter.XYs, n)

	// Horizontal placement. A single point has no tick gap.
	if n > 1 {
		tickGap := dims.Width / float64(n-1)
		for i := range xys {
			xys[i].X = xs[i] * tickGap
			if err := plotter.CheckFloats(xys[i].X); err != nil {
				return nil, &InvalidInputError{Field: "labels", Err: errors.Wrapf(err, "label %d out of range", i)}
			}
		}
	}

	// Vertical placement. Without a range every sample is put on the
	// midline of the safe band.
	data := SeriesRange(series)
	if data.Degenerate() {
		if opts.Strict {
			return nil, &DegenerateRangeError{Value: data.Min}
		}
		mid := band.Mid()
		for i := range xys {
			xys[i].Y = mid
		}
		return xys, nil
	}
	// A span beyond the float64 range is scaled on halved values, which
	// are exact.
	scale := 1.0
	if math.IsInf(data.Span(), 0) {
		scale = 0.5
		data = Interval{Min: data.Min * scale, Max: data.Max * scale}
	}
	for i := range xys {
		xys[i].Y = FlipTrans.Trans(data, band, series[i]*scale)
	}

	return xys, nil
}

// resolveX returns the x index of the first n samples: the label values if
// all labels are numeric, the sample positions otherwise.
func resolveX(labels Labels, n int) ([]float64, error) {
	xs := make([]float64, n)

	numeric := len(labels) == n && n > 0
	for _, l := range labels {
		if !l.IsNumeric() {
			numeric = false
			break
		}
	}

	for i := range xs {
		if !numeric {
			xs[i] = float64(i)
			continue
		}
		v := labels[i].Value()
		if err := plotter.CheckFloats(v); err != nil {
			return nil, &InvalidInputError{Field: "labels", Err: errors.Wrapf(err, "label %d", i)}
		}
		xs[i] = v
	}
	return xs, nil
}
