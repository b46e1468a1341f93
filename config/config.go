// Package config loads the drawing style of balance curves from YAML files.
package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/vdobler/balancecurve"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigParentDir is the directory below the XDG config home
	// which holds DefaultConfig.
	DefaultConfigParentDir = "balancecurve"
	// DefaultConfig is the file name of the style file.
	DefaultConfig = "style.yml"
)

// Margins in canvas units.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Marker configures the symbols drawn at each sample.
type Marker struct {
	Color  string  `yaml:"color"`
	Radius float64 `yaml:"radius"`
}

// Config is the content of a style file. Colors are hex triplets like
// "#add8e6" or one of the names in Colors.
type Config struct {
	Stroke     string  `yaml:"stroke"`
	Width      float64 `yaml:"width"`
	Background string  `yaml:"background"`
	Blend      string  `yaml:"blend"`
	Marker     Marker  `yaml:"marker"`
	Margins    Margins `yaml:"margins"`
	Strategy   string  `yaml:"strategy"`
	Strict     bool    `yaml:"strict"`

	// HeightFactor is the share of the window height used by the canvas.
	HeightFactor float64 `yaml:"height_factor"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Stroke:       "lightblue",
		Width:        5,
		Background:   "white",
		Blend:        balancecurve.Multiply.String(),
		Marker:       Marker{Color: "lightblue"},
		Margins:      Margins{Top: balancecurve.DefaultMargins.Top, Bottom: balancecurve.DefaultMargins.Bottom},
		Strategy:     balancecurve.SmoothCubic.String(),
		HeightFactor: 0.33,
	}
}

// Colors are the color names understood besides hex triplets.
var Colors = map[string]color.Color{
	"lightblue":   balancecurve.LightBlue,
	"white":       color.White,
	"black":       color.Black,
	"transparent": color.Transparent,
	"none":        nil,
}

// ParseColor parses a color name or hex triplet. "none" yields nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := Colors[strings.ToLower(s)]; ok {
		return c, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrapf(err, "color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Style returns the plot style described by c.
func (c Config) Style() (balancecurve.Style, error) {
	sty := balancecurve.DefaultStyle()
	var err error

	if sty.Line.Color, err = ParseColor(c.Stroke); err != nil {
		return sty, errors.Wrap(err, "stroke")
	}
	if c.Width < 0 {
		return sty, errors.Newf("negative stroke width %g", c.Width)
	}
	sty.Line.Width = vg.Length(c.Width)

	if sty.Background, err = ParseColor(c.Background); err != nil {
		return sty, errors.Wrap(err, "background")
	}
	if sty.Blend, err = balancecurve.ParseBlendMode(c.Blend); err != nil {
		return sty, err
	}

	if c.Marker.Color != "" {
		if sty.Marker.Color, err = ParseColor(c.Marker.Color); err != nil {
			return sty, errors.Wrap(err, "marker")
		}
	}
	if c.Marker.Radius < 0 {
		return sty, errors.Newf("negative marker radius %g", c.Marker.Radius)
	}
	sty.Marker.Radius = vg.Length(c.Marker.Radius)

	return sty, nil
}

// Options returns the normalization options described by c.
func (c Config) Options() balancecurve.Options {
	return balancecurve.Options{
		Margins: balancecurve.Margins{Top: c.Margins.Top, Bottom: c.Margins.Bottom},
		Strict:  c.Strict,
	}
}

// ParseStrategy returns the configured curve strategy.
func (c Config) ParseStrategy() (balancecurve.Strategy, error) {
	return balancecurve.ParseStrategy(c.Strategy)
}

// Validate checks all values of c.
func (c Config) Validate() error {
	if _, err := c.Style(); err != nil {
		return err
	}
	if _, err := c.ParseStrategy(); err != nil {
		return err
	}
	if !(c.HeightFactor > 0 && c.HeightFactor <= 1) {
		return errors.Newf("height_factor %g not in (0,1]", c.HeightFactor)
	}
	return nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// loadFrom reads file on top of the defaults.
func loadFrom(file string) (Config, string, error) {
	conf := Default()

	b, err := os.ReadFile(file)
	if err != nil {
		return conf, "", errors.Wrapf(err, "failed to load config %v", file)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, "", errors.Wrapf(err, "failed to unmarshal config %v", file)
	}

	if err = conf.Validate(); err != nil {
		return conf, "", errors.Wrapf(err, "invalid config %v", file)
	}

	return conf, file, nil
}

// XDGPath is the location of the style file in the XDG config home.
func XDGPath() string {
	return filepath.Join(xdg.ConfigHome, DefaultConfigParentDir, DefaultConfig)
}

// Load reads the style file. An explicitly given file must exist. Without
// one the file at XDGPath is used if it exists, else the defaults.
//
// The second return value is the path the config was loaded from, empty if
// the defaults are used.
func Load(file string) (Config, string, error) {
	if file != "" {
		return loadFrom(file)
	}

	xdgConfig := XDGPath()
	exists, err := fileExists(xdgConfig)
	if err != nil {
		return Default(), "", errors.Wrapf(err, "failed to check if file %v exists", xdgConfig)
	}
	if exists {
		return loadFrom(xdgConfig)
	}

	return Default(), "", nil
}
