package printplot

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Figure is a rows x cols grid of panels drawn aligned on one canvas.
// It is a grouping, not a layout engine: each panel is an ordinary
// plot, and the figure only remembers which grids and legend boxes
// belong to which panel so the figure-wide adjustment functions can
// reach them.
type Figure struct {
	// Tiles controls the panel arrangement and padding. Rows and Cols
	// are set by NewFigure and must not be changed.
	Tiles draw.Tiles

	panels [][]*Panel
}

// Panel is one plot of a figure together with the grids and legend
// boxes created through it.
type Panel struct {
	*plot.Plot

	grids   []*plotter.Grid
	legends []*LegendBox
}

// NewFigure returns a figure of rows x cols panels, each holding a
// plot styled with the installed weights, separated by a millimeter
// of padding.
func NewFigure(rows, cols int) (*Figure, error) {
	f := &Figure{
		Tiles: draw.Tiles{
			Rows: rows,
			Cols: cols,
			PadX: vg.Millimeter,
			PadY: vg.Millimeter,
		},
	}
	f.panels = make([][]*Panel, rows)
	for r := range f.panels {
		f.panels[r] = make([]*Panel, cols)
		for c := range f.panels[r] {
			p, err := New()
			if err != nil {
				return nil, err
			}
			f.panels[r][c] = &Panel{Plot: p}
		}
	}
	return f, nil
}

// Panel returns the panel at row, col. Row 0 is the top row.
func (f *Figure) Panel(row, col int) *Panel {
	return f.panels[row][col]
}

// Panels returns all panels in row-major order.
func (f *Figure) Panels() []*Panel {
	var ps []*Panel
	for _, row := range f.panels {
		ps = append(ps, row...)
	}
	return ps
}

// Axes returns the plots of all panels in row-major order.
func (f *Figure) Axes() []*plot.Plot {
	var axes []*plot.Plot
	for _, pn := range f.Panels() {
		axes = append(axes, pn.Plot)
	}
	return axes
}

// AddGrid adds a grid behind the panel's data and registers it for
// AdjustGridDashes. The grid picks up the installed grid line width.
func (pn *Panel) AddGrid() *plotter.Grid {
	g := plotter.NewGrid()
	pn.grids = append(pn.grids, g)
	pn.Add(g)
	return g
}

// Grids returns the grids added through AddGrid.
func (pn *Panel) Grids() []*plotter.Grid {
	return pn.grids
}

// AddLegend adds a legend box using the installed small font size and
// registers it for AdjustLegends. The box is drawn over the panel by
// Figure.Draw; the plot's own Legend field stays unused.
func (pn *Panel) AddLegend() (*LegendBox, error) {
	l, err := NewLegendBox(installed.SmallFontSize)
	if err != nil {
		return nil, err
	}
	pn.legends = append(pn.legends, l)
	return l, nil
}

// Legends returns the legend boxes added through AddLegend.
func (pn *Panel) Legends() []*LegendBox {
	return pn.legends
}

// Draw renders all panels onto dc with aligned plot areas, then the
// legend boxes of each panel over its canvas.
func (f *Figure) Draw(dc draw.Canvas) {
	plots := make([][]*plot.Plot, len(f.panels))
	for r, row := range f.panels {
		plots[r] = make([]*plot.Plot, len(row))
		for c, pn := range row {
			plots[r][c] = pn.Plot
		}
	}
	canvases := plot.Align(plots, f.Tiles, dc)
	for r, row := range f.panels {
		for c, pn := range row {
			pn.Plot.Draw(canvases[r][c])
			for _, l := range pn.legends {
				l.Draw(canvases[r][c])
			}
		}
	}
}

// WritePNG renders the figure at the given physical size and dpi and
// writes the PNG to w.
func (f *Figure) WritePNG(w io.Writer, width, height vg.Length, dpi int) error {
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	f.Draw(draw.New(img))
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// WritePDF renders the figure at the given physical size and writes
// the PDF to w.
func (f *Figure) WritePDF(w io.Writer, width, height vg.Length) error {
	c := vgpdf.New(width, height)
	f.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}
