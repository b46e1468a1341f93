// Package balancecurve turns a series of account balances into a drawable
// curve.
//
// It uses gonum.org/v1/plot for its geometry and drawing primitives.
//
// Normalization
//
// Normalize maps a Series onto a canvas of given Dimensions. The smallest
// sample is drawn at the bottom and the largest at the top of the safe band,
// the band left free by the top and bottom Margins. Samples are spread
// evenly over the full width, either by their position or by their numeric
// Labels. Coordinates are canvas coordinates with y measured from the top.
//
// Two inputs have no defined scale and are handled explicitly:
//   1. All samples equal (including a single sample): every point is drawn
//      on the midline of the safe band unless Options.Strict is set.
//   2. A single sample: the point is placed at x = 0.
//
// Curves
//
// BuildCurve connects the normalized points with a vg.Path. The SmoothCubic
// strategy emits one cubic segment per point whose control points lie on
// the straight line between its neighbours, Straight emits line segments.
//
// Drawing
//
// A Plot owns Geoms (see package geom) and renders them on a Panel, either
// to any draw.Canvas or to one of the svg, pdf, eps, png, jpg and tiff
// output formats.
package balancecurve
