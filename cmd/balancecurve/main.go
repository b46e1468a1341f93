// Package main provides the balancecurve command which draws the balance
// curve of an account history.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vdobler/balancecurve"
	"github.com/vdobler/balancecurve/config"
	"github.com/vdobler/balancecurve/data"
	"github.com/vdobler/balancecurve/geom"
	"github.com/vdobler/balancecurve/preview"
)

var (
	outputPath   string
	format       string
	width        float64
	height       float64
	windowHeight float64
	kind         string
	startBalance string
	strategy     string
	configPath   string
	strict       bool
	zero         bool
	showPreview  bool
	previewCols  int
	previewRows  int
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("balancecurve failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "balancecurve [input]",
		Short: "Draw the balance curve of an account history",
		Long: `balancecurve reads account balances (a JSON array), label/balance rows
(CSV) or Plaid transactions (JSON) and draws them as one smooth curve.
Without input file the data is read from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", "",
		"Output format: "+strings.Join(balancecurve.Formats, ", ")+" or txt (default: from output file, else svg)")
	rootCmd.Flags().Float64Var(&width, "width", 390, "Canvas width")
	rootCmd.Flags().Float64Var(&height, "height", 0, "Canvas height (default: height factor of the window height)")
	rootCmd.Flags().Float64Var(&windowHeight, "window-height", 844, "Window height the canvas height is derived from")
	rootCmd.Flags().StringVar(&kind, "kind", "", "Input kind: balances, csv or transactions (default: from file extension)")
	rootCmd.Flags().StringVar(&startBalance, "start-balance", "0", "Opening balance for transactions")
	rootCmd.Flags().StringVar(&strategy, "strategy", "", "Curve strategy: smooth-cubic or straight (default: from config)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Style file (default: "+config.XDGPath()+")")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on series without vertical range")
	rootCmd.Flags().BoolVar(&zero, "zero", false, "Draw a line at balance zero")
	rootCmd.Flags().BoolVar(&showPreview, "preview", false, "Print a terminal preview to stderr")
	rootCmd.Flags().IntVar(&previewCols, "preview-cols", 60, "Preview width in cells")
	rootCmd.Flags().IntVar(&previewRows, "preview-rows", 10, "Preview height in cells")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information")

	return rootCmd
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "balancecurve"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	conf, from, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if from != "" {
		logger.Debug("style loaded", "file", from)
	}
	if strategy != "" {
		conf.Strategy = strategy
	}
	if strict {
		conf.Strict = true
	}
	sty, err := conf.Style()
	if err != nil {
		return err
	}
	strat, err := conf.ParseStrategy()
	if err != nil {
		return err
	}

	series, labels, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.Debug("input read", "samples", len(series), "range", balancecurve.SeriesRange(series))

	dims := balancecurve.Dimensions{Width: width, Height: height}
	if height == 0 {
		dims = balancecurve.CanvasDimensions(balancecurve.Dimensions{Width: width, Height: windowHeight}, conf.HeightFactor)
	}

	outFormat := outputFormat()
	if outFormat != "txt" && !slices.Contains(balancecurve.Formats, outFormat) {
		return &balancecurve.InvalidInputError{Field: "format", Err: errors.Newf("unknown format %q", outFormat)}
	}
	if outFormat == "txt" || showPreview {
		w := cmd.ErrOrStderr()
		if outFormat == "txt" {
			w = cmd.OutOrStdout()
		}
		if err := writePreview(w, conf.Options(), series, labels, dims, strat); err != nil {
			return err
		}
		if outFormat == "txt" {
			return nil
		}
	}

	plt := balancecurve.NewPlot(geom.Curve{Series: series, Labels: labels, Strategy: strat})
	plt.Style = sty
	plt.Options = conf.Options()
	plt.Logger = logger
	if sty.Marker.Radius > 0 {
		plt.Geoms = append(plt.Geoms, geom.Point{Series: series, Labels: labels})
	}
	if zero {
		plt.Geoms = append([]balancecurve.Geom{geom.Level{Series: series}}, plt.Geoms...)
	}

	if outputPath == "" {
		return plt.Render(cmd.OutOrStdout(), outFormat, dims)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "failed to create output")
	}
	if err := plt.Render(f, outFormat, dims); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "failed to close output")
	}
	logger.Info("curve written", "file", outputPath, "format", outFormat, "samples", len(series), "size", dims)
	return nil
}

func readInput(stdin io.Reader, args []string) (balancecurve.Series, balancecurve.Labels, error) {
	start, err := decimal.NewFromString(startBalance)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid start balance %q", startBalance)
	}

	var k data.Kind
	if kind != "" {
		if k, err = data.ParseKind(kind); err != nil {
			return nil, nil, err
		}
	}

	if len(args) == 0 || args[0] == "-" {
		if k == "" {
			k = data.Balances
		}
		return data.Load(stdin, k, start)
	}

	return data.Open(args[0], k, start)
}

// outputFormat is the --format flag, else the extension of the output file,
// else svg.
func outputFormat() string {
	if format != "" {
		return strings.ToLower(format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(outputPath), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "svg"
}

func writePreview(w io.Writer, opts balancecurve.Options, series balancecurve.Series, labels balancecurve.Labels,
	dims balancecurve.Dimensions, strat balancecurve.Strategy) error {
	path, err := balancecurve.TransformWith(opts, series, labels, dims, strat)
	if err != nil {
		return err
	}
	lines, err := preview.Braille(path, dims, previewCols, previewRows)
	if err != nil {
		return err
	}
	r := balancecurve.SeriesRange(series)
	caption := fmt.Sprintf("%d samples, %s to %s", len(series),
		decimal.NewFromFloat(r.Min).StringFixed(2), decimal.NewFromFloat(r.Max).StringFixed(2))
	_, err = fmt.Fprintln(w, preview.Box(lines, "Balance", caption))
	return err
}
