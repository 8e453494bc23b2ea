package printplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Weights are the stroke widths and font sizes derived from a base
// font size. All values are in points. The zero value is useless;
// build one with WeightsFor and override individual fields before
// Install or Apply if the derived value does not suit the figure.
type Weights struct {
	FontSize      vg.Length // axis labels and titles
	SmallFontSize vg.Length // tick labels and legend text
	Line          vg.Length // plotted lines and axis lines
	Grid          vg.Length // grid line width
	TickWidth     vg.Length
	TickLength    vg.Length
	LabelPad      vg.Length // gap between an axis and its tick labels
	MarkerRadius  vg.Length
	CapWidth      vg.Length // error bar cap width
}

// WeightsFor derives print weights from fontSize. The unit is
// fontSize/12, so the ratios below read in units of the plot line
// width: grid and tick strokes are half a line, tick length and label
// padding four lines, marker radius three lines and error bar caps
// six lines wide. Small text is 5/6 of the base size.
func WeightsFor(fontSize vg.Length) Weights {
	line := fontSize / 12
	return Weights{
		FontSize:      fontSize,
		SmallFontSize: fontSize * 5 / 6,
		Line:          line,
		Grid:          line / 2,
		TickWidth:     line / 2,
		TickLength:    4 * line,
		LabelPad:      4 * line,
		MarkerRadius:  3 * line,
		CapWidth:      6 * line,
	}
}

// installed is read by New and NewFigure at construction time.
var installed = WeightsFor(vg.Points(12))

// Install makes w the weights for subsequently created objects. It
// overwrites the plotter package defaults read by NewLine, NewScatter
// and NewGrid at creation time; plots and plotters that already exist
// keep their styles.
func (w Weights) Install() {
	installed = w
	plotter.DefaultLineStyle.Width = w.Line
	plotter.DefaultGlyphStyle.Radius = w.MarkerRadius
	plotter.DefaultGridLineStyle.Width = w.Grid
}

// SetInkWeight installs the weights derived from fontSize. Call it
// before the figure is created; fontSize is in points.
func SetInkWeight(fontSize vg.Length) {
	WeightsFor(fontSize).Install()
}

// Apply restyles an existing plot with w: axis and title fonts, axis
// line widths and tick geometry. Tick labels and the legend get the
// small font.
func (w Weights) Apply(p *plot.Plot) error {
	base, err := vg.MakeFont(plot.DefaultFont, w.FontSize)
	if err != nil {
		return err
	}
	small, err := vg.MakeFont(plot.DefaultFont, w.SmallFontSize)
	if err != nil {
		return err
	}
	p.Title.TextStyle.Font = base
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = base
		ax.LineStyle.Width = w.Line
		ax.Tick.Label.Font = small
		ax.Tick.LineStyle.Width = w.TickWidth
		ax.Tick.Length = w.TickLength
	}
	p.Legend.TextStyle.Font = small
	return nil
}

// New returns a plot styled with the installed weights. Plots made
// before a SetInkWeight call are not touched by it; make them anew or
// use Weights.Apply.
func New() (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	if err := installed.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}
