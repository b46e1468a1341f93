package balancecurve

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// A Plot draws its geoms onto a single panel which covers the whole canvas.
type Plot struct {
	Style   Style
	Options Options
	Geoms   []Geom

	// Logger receives diagnostics. Nil means the default logger.
	Logger *log.Logger
}

// NewPlot returns a plot with the default style and options.
func NewPlot(geoms ...Geom) *Plot {
	return &Plot{
		Style:   DefaultStyle(),
		Options: DefaultOptions(),
		Geoms:   geoms,
	}
}

func (p *Plot) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Default()
}

// Draw fills the background of c and draws all geoms onto it.
// The blend mode is not applied: everything is painted normally.
func (p *Plot) Draw(c vgdraw.Canvas) error {
	panel := &Panel{Plot: p, Canvas: c}
	panel.fillBackground()
	return p.drawGeoms(panel)
}

func (p *Plot) drawGeoms(panel *Panel) error {
	for i, g := range p.Geoms {
		if err := g.Draw(panel); err != nil {
			return errors.Wrapf(err, "geom %d", i)
		}
	}
	return nil
}

// Formats lists the output formats understood by Render.
var Formats = []string{"svg", "pdf", "eps", "png", "jpg", "jpeg", "tif", "tiff"}

func isRaster(format string) bool {
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		return true
	}
	return false
}

// Render draws p on a canvas of size dims and writes it in the given format
// to w. Raster formats use one pixel per unit. A Multiply blend mode is
// honoured for raster formats only; vector formats are painted normally.
func (p *Plot) Render(w io.Writer, format string, dims Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	format = strings.ToLower(format)
	width, height := vg.Length(dims.Width), vg.Length(dims.Height)

	if !isRaster(format) {
		cw, err := vgdraw.NewFormattedCanvas(width, height, format)
		if err != nil {
			return &InvalidInputError{Field: "format", Err: err}
		}
		if p.Style.Blend != Normal {
			p.logger().Warn("blend mode not supported by vector format, painting normally",
				"format", format, "blend", p.Style.Blend)
		}
		if err := p.Draw(vgdraw.New(cw)); err != nil {
			return err
		}
		_, err = cw.WriteTo(w)
		return errors.Wrapf(err, "writing %s", format)
	}

	base := newImageCanvas(width, height)
	panel := &Panel{Plot: p, Canvas: vgdraw.New(base)}
	panel.fillBackground()

	if p.Style.Blend == Multiply {
		layer := newImageCanvas(width, height)
		if err := p.drawGeoms(&Panel{Plot: p, Canvas: vgdraw.New(layer)}); err != nil {
			return err
		}
		multiply(base.Image(), layer.Image())
	} else if err := p.drawGeoms(panel); err != nil {
		return err
	}

	var wt io.WriterTo
	switch format {
	case "png":
		wt = vgimg.PngCanvas{Canvas: base}
	case "jpg", "jpeg":
		wt = vgimg.JpegCanvas{Canvas: base}
	case "tif", "tiff":
		wt = vgimg.TiffCanvas{Canvas: base}
	}
	_, err := wt.WriteTo(w)
	return errors.Wrapf(err, "writing %s", format)
}

// newImageCanvas returns a transparent image canvas at 72 dpi, i.e. one
// pixel per vg.Point.
func newImageCanvas(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(int(vg.Inch)),
		vgimg.UseBackgroundColor(color.Transparent),
	)
}

// multiply composes src onto dst with the multiply blend mode.
// Both images use alpha-premultiplied colors and must have equal bounds.
func multiply(dst draw.Image, src image.Image) {
	const m = 0xffff
	b := dst.Bounds().Intersect(src.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sr, sg, sb, sa := src.At(x, y).RGBA()
			if sa == 0 {
				continue
			}
			dr, dg, db, da := dst.At(x, y).RGBA()
			blend := func(s, d uint32) uint16 {
				s64, d64 := uint64(s), uint64(d)
				return uint16((s64*d64 + s64*(m-uint64(da)) + d64*(m-uint64(sa))) / m)
			}
			dst.Set(x, y, color.RGBA64{
				R: blend(sr, dr),
				G: blend(sg, dg),
				B: blend(sb, db),
				A: uint16(uint64(sa) + uint64(da) - uint64(sa)*uint64(da)/m),
			})
		}
	}
}
