package printplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The Adjust functions operate on finished figures, unlike
// SetInkWeight which only affects objects created after it. Each one
// assigns absolute values derived from the font size, so repeated
// calls with the same arguments are no-ops.

// AdjustLabelPadding sets the gap between every axis of every given
// figure and its tick labels to match fontSize.
func AdjustLabelPadding(fontSize vg.Length, figs ...*Figure) {
	pad := WeightsFor(fontSize).LabelPad
	for _, f := range figs {
		for _, p := range f.Axes() {
			p.X.Padding = pad
			p.Y.Padding = pad
		}
	}
}

// AdjustErrorBarCaps sets the cap width of the given error bar
// plotters according to fontSize. The caller passes the plotters it
// got back from plotter.NewYErrorBars or plotter.NewXErrorBars;
// anything else is left alone.
func AdjustErrorBarCaps(fontSize vg.Length, bars ...plot.Plotter) {
	w := WeightsFor(fontSize).CapWidth
	for _, b := range bars {
		switch eb := b.(type) {
		case *plotter.YErrorBars:
			eb.CapWidth = w
		case *plotter.XErrorBars:
			eb.CapWidth = w
		}
	}
}

// AdjustGridDashes sets the dash pattern of every grid in every given
// figure to the dotted pattern scaled to fontSize, so small fonts get
// finer dashing. Only grids added through Panel.AddGrid are found.
func AdjustGridDashes(fontSize vg.Length, figs ...*Figure) {
	dashes := DashPattern(DottedLine, fontSize)
	for _, f := range figs {
		for _, pn := range f.Panels() {
			for _, g := range pn.grids {
				g.Vertical.Dashes = dashes
				g.Horizontal.Dashes = dashes
			}
		}
	}
}

// AdjustLegends makes every legend box in every given figure
// borderless with a translucent background, so legend text stays
// legible over plotted data without an outline. Fixed constants; the
// legend look does not scale with the font.
func AdjustLegends(figs ...*Figure) {
	for _, f := range figs {
		for _, pn := range f.Panels() {
			for _, l := range pn.legends {
				l.Frame = draw.LineStyle{}
				l.Fill = LegendFill
			}
		}
	}
}

// TurnFrameOff removes the axis lines and tick marks of one plot,
// leaving tick labels and the plotted data visible. Loop over the
// panels to strip a whole figure.
func TurnFrameOff(p *plot.Plot) {
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Width = 0
		ax.Tick.Length = 0
		ax.Tick.LineStyle.Width = 0
	}
}

// AdjustBoxPlots recolors the given box plots to slate gray with black
// medians and dots the whiskers, scaled to fontSize. The plot package
// strokes whisker caps with the whisker style, so the caps follow it.
func AdjustBoxPlots(fontSize vg.Length, boxes ...*plotter.BoxPlot) {
	w := WeightsFor(fontSize)
	dotted := DashPattern(DottedLine, fontSize)
	for _, b := range boxes {
		b.BoxStyle.Color = BoxColor
		b.WhiskerStyle.Color = BoxColor
		b.WhiskerStyle.Dashes = dotted
		b.GlyphStyle.Color = BoxColor
		b.MedianStyle.Color = MedianColor
		b.MedianStyle.Width = w.Line * 11 / 10
	}
}
