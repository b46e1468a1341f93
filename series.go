package balancecurve

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Series

// Series is an ordered sequence of samples, typically account balances in
// time order. Series implements plotter.Valuer.
type Series []float64

func (s Series) Len() int            { return len(s) }
func (s Series) Value(i int) float64 { return s[i] }

// Validate checks that s is non-empty and contains only finite samples.
func (s Series) Validate() error {
	if len(s) == 0 {
		return &InvalidInputError{Field: "series", Err: plotter.ErrNoData}
	}
	for i, v := range s {
		if err := plotter.CheckFloats(v); err != nil {
			return &InvalidInputError{Field: "series", Err: errors.Wrapf(err, "sample %d", i)}
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Label

type labelKind uint8

const (
	textLabel labelKind = iota
	numericLabel
)

// A Label marks the x position of one sample. It is either numeric, in
// which case its value is used as x index, or textual and opaque.
type Label struct {
	kind labelKind
	num  float64
	text string
}

// NumericLabel returns a label with the explicit x index x.
func NumericLabel(x float64) Label { return Label{kind: numericLabel, num: x} }

// TextLabel returns an opaque label.
func TextLabel(s string) Label { return Label{kind: textLabel, text: s} }

// IsNumeric reports whether l carries an x index.
func (l Label) IsNumeric() bool { return l.kind == numericLabel }

// Value returns the x index of a numeric label and NaN otherwise.
func (l Label) Value() float64 {
	if l.kind != numericLabel {
		return math.NaN()
	}
	return l.num
}

func (l Label) String() string {
	if l.kind == numericLabel {
		return strconv.FormatFloat(l.num, 'g', -1, 64)
	}
	return l.text
}

// Labels are matched to the samples of a Series by position.
type Labels []Label

// TextLabels wraps each of texts in a TextLabel.
func TextLabels(texts ...string) Labels {
	ls := make(Labels, len(texts))
	for i, t := range texts {
		ls[i] = TextLabel(t)
	}
	return ls
}

// NumericLabels wraps each of xs in a NumericLabel.
func NumericLabels(xs ...float64) Labels {
	ls := make(Labels, len(xs))
	for i, x := range xs {
		ls[i] = NumericLabel(x)
	}
	return ls
}

// ----------------------------------------------------------------------------
// Dimensions and Margins

// Dimensions of a drawing surface.
type Dimensions struct {
	Width, Height float64
}

// Validate checks that d describes a non-empty, finite canvas.
func (d Dimensions) Validate() error {
	if plotter.CheckFloats(d.Width, d.Height) != nil || !(d.Width > 0) || !(d.Height > 0) {
		return &InvalidInputError{
			Field: "dimensions",
			Err:   errors.Newf("width %g and height %g must be positive", d.Width, d.Height),
		}
	}
	return nil
}

// CanvasDimensions returns the canvas available to a chart laid out in a
// window: the full window width and factor times its height.
func CanvasDimensions(window Dimensions, factor float64) Dimensions {
	return Dimensions{Width: window.Width, Height: window.Height * factor}
}

// Margins are the insets at the top and bottom of a canvas which no data
// point is drawn into.
type Margins struct {
	Top, Bottom float64
}

// DefaultMargins leave 10 units free at the top and the bottom.
var DefaultMargins = Margins{Top: 10, Bottom: 10}

// Band returns the safe band of canvas d, i.e. the y range measured from
// the top where data points are drawn.
func (m Margins) Band(d Dimensions) (Interval, error) {
	if plotter.CheckFloats(m.Top, m.Bottom) != nil || m.Top < 0 || m.Bottom < 0 {
		return Interval{}, &InvalidInputError{
			Field: "margins",
			Err:   errors.Newf("top %g and bottom %g must not be negative", m.Top, m.Bottom),
		}
	}
	if m.Top+m.Bottom >= d.Height {
		return Interval{}, &InvalidInputError{
			Field: "margins",
			Err:   errors.Newf("top %g and bottom %g leave no room in height %g", m.Top, m.Bottom, d.Height),
		}
	}
	return Interval{Min: m.Bottom, Max: d.Height - m.Top}, nil
}
