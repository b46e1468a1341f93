// Scale Transformations
//
// Scale transformations map a data interval onto a display interval.
package balancecurve

// A Transformation maps the interval from onto the interval to.
type Transformation struct {
	Name  string
	Trans func(from, to Interval, x float64) float64
}

// LinearTrans implements a linear mapping of from to to.
// The result is undefined if from is degenerate.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
}

// FlipTrans maps from linearly onto to, turned upside down: from.Min is
// mapped to to.Max and from.Max to to.Min. This is how data values reach
// canvas coordinates measured from the top.
var FlipTrans = Transformation{
	Name: "Flip",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Max - LinearTrans.Trans(from, UnitInterval, x)*(to.Max-to.Min)
	},
}
