// Package printplot tunes gonum.org/v1/plot figures for printed
// publication.
//
//
// Usage
//
// Pick a font size that suits the printed figure, for example 8 point
// for a single-column figure. Call SetInkWeight with that size before
// building the figure: it overwrites the defaults the plot and plotter
// packages read at object-creation time, so it has no effect on plots
// that already exist. After plotting, run the Adjust functions to fix
// up the parts that can only be set on finished objects, then render
// with Figure.WritePNG or Figure.WritePDF.
//
//      fontSize := vg.Points(8)
//      printplot.SetInkWeight(fontSize)
//
//      fig, err := printplot.NewFigure(2, 1)
//      ...
//      top := fig.Panel(0, 0)
//      line, err := plotter.NewLine(xys)
//      top.Add(line)
//      bars, err := plotter.NewYErrorBars(data)
//      top.Add(bars)
//      grid := top.AddGrid()
//      leg, err := top.AddLegend()
//      leg.Add("abc", line)
//
//      printplot.AdjustLabelPadding(fontSize, fig)
//      printplot.AdjustErrorBarCaps(fontSize, bars)
//      printplot.AdjustGridDashes(fontSize, fig)
//      printplot.AdjustLegends(fig)
//      printplot.TurnFrameOff(fig.Panel(1, 0).Plot)
//
//      fig.WritePNG(w, 3.42*vg.Inch, 3*vg.Inch, 150)
//
//
// Scaling
//
// All derived sizes are fractions of the base font size; the unit is
// one twelfth of it, so a 12 point figure gets 1 point plot lines.
// WeightsFor documents the individual ratios. Callers that want a
// different line weight build a Weights value, override the fields and
// Install it themselves.
//
//
// Caveats
//
// Installed weights and the host package defaults are plain process
// state. Nothing here is safe for concurrent use, the same as the
// plot package itself.
package printplot
