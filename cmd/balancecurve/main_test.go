package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// execute runs the command with args and stdin, isolated from the user's
// style file.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	old := xdg.ConfigHome
	xdg.ConfigHome = t.TempDir()
	defer func() { xdg.ConfigHome = old }()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTextPreview(t *testing.T) {
	out, _, err := execute(t, `[0, 10, 0]`, "--format", "txt", "--preview-cols", "20", "--preview-rows", "4")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Balance", "3 samples, 0.00 to 10.00", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview lacks %q:\n%s", want, out)
		}
	}
}

func TestSVGToStdout(t *testing.T) {
	out, stderr, err := execute(t, `[1200, 1180.5, 1250]`, "--preview")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("stdout is not svg: %.80q", out)
	}
	if !strings.Contains(stderr, "Balance") {
		t.Errorf("no preview on stderr: %q", stderr)
	}
}

func TestPNGFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "days.csv")
	if err := os.WriteFile(in, []byte("day,balance\nmon,10\ntue,30\nwed,20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "curve.png")
	_, stderr, err := execute(t, "", in, "-o", outPath, "--width", "120", "--height", "80", "--zero")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "curve written") {
		t.Errorf("missing log line: %q", stderr)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image size %v, want 120x80", b)
	}
}

func TestTransactions(t *testing.T) {
	txs := `[{"date": "2024-01-01", "amount": 25, "name": "a"},
	         {"date": "2024-01-02", "amount": -10, "name": "b"}]`
	out, _, err := execute(t, txs, "--kind", "transactions", "--start-balance", "100",
		"--format", "txt", "--strategy", "straight")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2 samples, 75.00 to 85.00") {
		t.Errorf("unexpected preview:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--strategy", "spline"},
		{"--kind", "xlsx"},
		{"--start-balance", "lots", "--kind", "transactions"},
		{"--format", "bmp"},
		{"--strict", "--format", "txt"},
		{"--width", "0"},
		{filepath.Join(t.TempDir(), "missing.json")},
	} {
		stdin := `[5, 5, 5]`
		if _, _, err := execute(t, stdin, args...); err == nil {
			t.Errorf("%v: no error", args)
		}
	}
}

func TestMissingInput(t *testing.T) {
	_, _, err := execute(t, "", filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want an error matching os.ErrNotExist", err)
	}
}

func TestUnknownFormatWritesNothing(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "curve.bmp")
	_, _, err := execute(t, `[1, 2]`, "-o", outPath)
	if err == nil || !strings.Contains(err.Error(), "bmp") {
		t.Fatalf("got %v, want error about bmp", err)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("output file created for unknown format: %v", err)
	}
}

func TestFormatHelp(t *testing.T) {
	usage := newRootCmd().Flags().Lookup("format").Usage
	for _, f := range []string{"svg", "tiff", "txt"} {
		if !strings.Contains(usage, f) {
			t.Errorf("--format help lacks %q: %s", f, usage)
		}
	}
}
