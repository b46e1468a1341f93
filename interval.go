package balancecurve

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// yet determined.
type Interval struct {
	Min, Max float64
}

// UnitInterval is [0:1].
var UnitInterval = Interval{0, 1}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j cover the same range. Two unset edges are
// considered equal.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) || math.IsNaN(j.Min) {
		if !(math.IsNaN(i.Min) && math.IsNaN(j.Min)) {
			return false
		}
	} else if i.Min != j.Min {
		return false
	}
	if math.IsNaN(i.Max) || math.IsNaN(j.Max) {
		return math.IsNaN(i.Max) && math.IsNaN(j.Max)
	}
	return i.Max == j.Max
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Degenerate reports whether i is set but has zero width.
func (i Interval) Degenerate() bool {
	return i.IsSet() && i.Min == i.Max
}

// Span is Max-Min.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

// Mid is the center of i.
func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2
}

// Contains reports whether x lies in the closed interval i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

// SeriesRange returns the interval covered by all samples in s.
// The interval is unset if s is empty.
func SeriesRange(s Series) Interval {
	r := unsetInterval()
	r.Update(s...)
	return r
}
