// Command printplot renders small demo figures showing the print
// styling conventions: an error bar figure and a box plot figure, both
// sized for a single-column print layout.
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AndrewDDavis/printplot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type renderOpts struct {
	fontSize float64 // points
	width    float64 // inches
	height   float64 // inches
	dpi      int
	out      string
	format   string
}

func run() error {
	var (
		verbose bool
		opts    renderOpts
	)
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})

	root := &cobra.Command{
		Use:          "printplot",
		Short:        "Render print-targeted demo figures",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().Float64Var(&opts.fontSize, "font-size", 8, "base font size in points")
	root.PersistentFlags().Float64Var(&opts.width, "width", 3.42, "figure width in inches")
	root.PersistentFlags().Float64Var(&opts.height, "height", 3, "figure height in inches")
	root.PersistentFlags().IntVar(&opts.dpi, "dpi", 150, "raster resolution")
	root.PersistentFlags().StringVarP(&opts.out, "out", "o", "figure.png", "output file")
	root.PersistentFlags().StringVar(&opts.format, "format", "png", "output format (png or pdf)")

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Two stacked panels: error bars with grid and legend, frameless scatter",
			RunE: func(cmd *cobra.Command, args []string) error {
				fig, err := demoFigure(vg.Points(opts.fontSize))
				if err != nil {
					return err
				}
				return writeFigure(logger, fig, opts)
			},
		},
		&cobra.Command{
			Use:   "boxplot",
			Short: "Three box plots with the subdued print palette",
			RunE: func(cmd *cobra.Command, args []string) error {
				fig, err := boxplotFigure(vg.Points(opts.fontSize))
				if err != nil {
					return err
				}
				return writeFigure(logger, fig, opts)
			},
		},
	)

	return root.Execute()
}

// demoFigure follows the documented calling convention: install the
// ink weights, build the figure, then run the adjustments.
func demoFigure(fontSize vg.Length) (*printplot.Figure, error) {
	printplot.SetInkWeight(fontSize)

	fig, err := printplot.NewFigure(2, 1)
	if err != nil {
		return nil, err
	}

	abc := make(plotter.XYs, 4)
	for i := range abc {
		abc[i].X, abc[i].Y = float64(i), float64(i+1)
	}

	top := fig.Panel(0, 0)
	top.Y.Label.Text = "abc"
	line, err := plotter.NewLine(abc)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Dashes = printplot.DashPattern(printplot.DashedLine, fontSize)
	top.Add(line)

	errs := make(plotter.YErrors, len(abc))
	for i := range errs {
		errs[i].Low = abc[i].Y / 10
		errs[i].High = abc[i].Y / 10
	}
	bars, err := plotter.NewYErrorBars(struct {
		plotter.XYs
		plotter.YErrors
	}{abc, errs})
	if err != nil {
		return nil, err
	}
	top.Add(bars)

	grid := top.AddGrid()
	grid.Vertical.Color = nil // horizontal grid lines only

	leg, err := top.AddLegend()
	if err != nil {
		return nil, err
	}
	leg.Add("abc", line)

	bottom := fig.Panel(1, 0)
	pts, err := plotter.NewScatter(abc)
	if err != nil {
		return nil, err
	}
	bottom.Add(pts)

	printplot.AdjustLabelPadding(fontSize, fig)
	printplot.AdjustErrorBarCaps(fontSize, bars)
	printplot.AdjustGridDashes(fontSize, fig)
	printplot.AdjustLegends(fig)
	printplot.TurnFrameOff(bottom.Plot)

	return fig, nil
}

func boxplotFigure(fontSize vg.Length) (*printplot.Figure, error) {
	printplot.SetInkWeight(fontSize)

	fig, err := printplot.NewFigure(1, 1)
	if err != nil {
		return nil, err
	}
	pn := fig.Panel(0, 0)

	groups := []plotter.Values{
		{1.2, 1.9, 2.1, 2.4, 2.6, 3.1, 3.3, 5.8},
		{2.0, 2.8, 3.0, 3.1, 3.4, 3.9, 4.2, 4.4},
		{0.8, 1.1, 1.6, 1.8, 2.2, 2.5, 2.9, 3.2},
	}
	boxes := make([]*plotter.BoxPlot, len(groups))
	for i, vals := range groups {
		b, err := plotter.NewBoxPlot(vg.Points(20), float64(i), vals)
		if err != nil {
			return nil, err
		}
		boxes[i] = b
		pn.Add(b)
	}
	pn.NominalX("one", "two", "three")

	printplot.AdjustBoxPlots(fontSize, boxes...)
	printplot.AdjustLabelPadding(fontSize, fig)

	return fig, nil
}

func writeFigure(logger *charmlog.Logger, fig *printplot.Figure, opts renderOpts) error {
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := vg.Length(opts.width) * vg.Inch
	h := vg.Length(opts.height) * vg.Inch
	logger.Debug("rendering", "width", opts.width, "height", opts.height,
		"font-size", opts.fontSize, "format", opts.format)

	var werr error
	switch opts.format {
	case "png":
		werr = fig.WritePNG(f, w, h, opts.dpi)
	case "pdf":
		werr = fig.WritePDF(f, w, h)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	if werr != nil {
		return werr
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote figure", "path", opts.out)
	return nil
}
