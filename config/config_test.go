package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/vdobler/balancecurve"
)

func TestDefault(t *testing.T) {
	conf := Default()
	if err := conf.Validate(); err != nil {
		t.Fatal(err)
	}
	sty, err := conf.Style()
	if err != nil {
		t.Fatal(err)
	}
	want := balancecurve.DefaultStyle()
	if sty.Line.Color != want.Line.Color || sty.Line.Width != want.Line.Width || sty.Background != want.Background || sty.Blend != want.Blend {
		t.Errorf("default config style %+v, want %+v", sty, want)
	}
	if conf.Options() != balancecurve.DefaultOptions() {
		t.Errorf("default options %+v", conf.Options())
	}
	if s, err := conf.ParseStrategy(); err != nil || s != balancecurve.SmoothCubic {
		t.Errorf("default strategy %v, %v", s, err)
	}
}

var colorTests = []struct {
	in   string
	want color.Color
	ok   bool
}{
	{"lightblue", balancecurve.LightBlue, true},
	{" White ", color.White, true},
	{"none", nil, true},
	{"#ff8000", color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, true},
	{"#f00", color.RGBA{R: 0xff, A: 0xff}, true},
	{"ff8000", nil, false},
	{"#gg0000", nil, false},
	{"salmon", nil, false},
}

func TestParseColor(t *testing.T) {
	for _, tc := range colorTests {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseColor(%q) error %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	old := xdg.ConfigHome
	xdg.ConfigHome = filepath.Join(dir, "xdg")
	defer func() { xdg.ConfigHome = old }()

	// Nothing in the XDG dir: defaults.
	conf, from, err := Load("")
	if err != nil || from != "" || conf != Default() {
		t.Errorf("Load without files = %+v, %q, %v", conf, from, err)
	}

	// The XDG file overrides single values.
	writeFile(t, XDGPath(), "stroke: \"#336699\"\nmargins:\n  top: 20\n")
	conf, from, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if from != XDGPath() {
		t.Errorf("loaded from %q, want %q", from, XDGPath())
	}
	if conf.Stroke != "#336699" || conf.Margins.Top != 20 || conf.Margins.Bottom != 10 || conf.Width != 5 {
		t.Errorf("got %+v", conf)
	}

	// An explicit file wins.
	explicit := filepath.Join(dir, "mine.yml")
	writeFile(t, explicit, "blend: normal\nstrategy: straight\nheight_factor: 0.5\nstrict: true\n")
	conf, from, err = Load(explicit)
	if err != nil {
		t.Fatal(err)
	}
	if from != explicit || conf.Blend != "normal" || conf.Strategy != "straight" || conf.HeightFactor != 0.5 || !conf.Strict {
		t.Errorf("got %+v from %q", conf, from)
	}
	if conf.Stroke != "lightblue" {
		t.Errorf("explicit file merged with XDG file: stroke %q", conf.Stroke)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"yaml":     "stroke: [\n",
		"color":    "stroke: salmon\n",
		"blend":    "blend: screen\n",
		"strategy": "strategy: spline\n",
		"factor":   "height_factor: 1.5\n",
		"width":    "width: -1\n",
	} {
		path := filepath.Join(dir, name+".yml")
		writeFile(t, path, content)
		if _, _, err := Load(path); err == nil {
			t.Errorf("%s: Load succeeded", name)
		}
	}
	if _, _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Errorf("missing explicit file: Load succeeded")
	}
}
