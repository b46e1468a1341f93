//go:build ignore

package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/vdobler/balancecurve"
	"github.com/vdobler/balancecurve/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var series balancecurve.Series

func init() {
	series = make(balancecurve.Series, 30)
	balance := 1200.0
	for i := range series {
		balance += 80 * rand.NormFloat64()
		if i%14 == 0 {
			balance += 900 // payday
		}
		series[i] = balance
	}
}

func main() {
	img := vgimg.New(780, 560)
	dc := draw.New(img)

	panels := []struct {
		title string
		geoms []balancecurve.Geom
	}{
		{"smooth-cubic", []balancecurve.Geom{
			geom.Curve{Series: series, Strategy: balancecurve.SmoothCubic},
		}},
		{"straight", []balancecurve.Geom{
			geom.Curve{Series: series, Strategy: balancecurve.Straight},
		}},
		{"with points", []balancecurve.Geom{
			geom.Curve{Series: series},
			geom.Point{Series: series, Default: draw.GlyphStyle{Radius: 3}},
		}},
		{"uneven numeric labels", []balancecurve.Geom{
			geom.Curve{Series: series, Labels: balancecurve.NumericLabels(0, 0.5, 1, 2, 3, 5, 6, 7)},
		}},
	}

	for i, p := range panels {
		plt := balancecurve.NewPlot(p.geoms...)
		plt.Style.Background = nil
		if i%2 == 1 {
			plt.Style.Line.Width = 2
		}
		col, row := i%2, i/2
		dc.Rectangle.Min.X, dc.Rectangle.Max.X = 390*vg.Length(col), 390*vg.Length(col+1)
		dc.Rectangle.Min.Y, dc.Rectangle.Max.Y = 280*vg.Length(1-row), 280*vg.Length(2-row)
		if err := plt.Draw(dc); err != nil {
			fmt.Println(p.title, err)
		}
	}

	f, err := os.Create("curve-demo.png")
	if err != nil {
		panic(err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		panic(err)
	}
}
