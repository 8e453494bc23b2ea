package printplot

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// resetDefaults restores the host package defaults and the installed
// weights after a test that calls Install.
func resetDefaults(t *testing.T) {
	t.Helper()
	ls := plotter.DefaultLineStyle
	gs := plotter.DefaultGlyphStyle
	gr := plotter.DefaultGridLineStyle
	w := installed
	t.Cleanup(func() {
		plotter.DefaultLineStyle = ls
		plotter.DefaultGlyphStyle = gs
		plotter.DefaultGridLineStyle = gr
		installed = w
	})
}

func TestWeightsFor(t *testing.T) {
	tests := []vg.Length{6, 8, 12, 24}

	for _, fs := range tests {
		w := WeightsFor(fs)
		line := fs / 12
		if w.FontSize != fs {
			t.Errorf("fs %v: got FontSize %v", fs, w.FontSize)
		}
		if w.SmallFontSize != fs*5/6 {
			t.Errorf("fs %v: got SmallFontSize %v", fs, w.SmallFontSize)
		}
		if w.Line != line {
			t.Errorf("fs %v: got Line %v", fs, w.Line)
		}
		if w.Grid != line/2 || w.TickWidth != line/2 {
			t.Errorf("fs %v: got Grid %v TickWidth %v", fs, w.Grid, w.TickWidth)
		}
		if w.TickLength != 4*line || w.LabelPad != 4*line {
			t.Errorf("fs %v: got TickLength %v LabelPad %v", fs, w.TickLength, w.LabelPad)
		}
		if w.MarkerRadius != 3*line {
			t.Errorf("fs %v: got MarkerRadius %v", fs, w.MarkerRadius)
		}
		if w.CapWidth != 6*line {
			t.Errorf("fs %v: got CapWidth %v", fs, w.CapWidth)
		}
	}
}

func TestWeightsMonotonic(t *testing.T) {
	sizes := []vg.Length{4, 6, 8, 10, 12, 18, 24}
	for i := 1; i < len(sizes); i++ {
		a, b := WeightsFor(sizes[i-1]), WeightsFor(sizes[i])
		if b.Line <= a.Line {
			t.Errorf("Line not monotonic: %v at %v, %v at %v",
				a.Line, sizes[i-1], b.Line, sizes[i])
		}
		if b.MarkerRadius <= a.MarkerRadius {
			t.Errorf("MarkerRadius not monotonic: %v at %v, %v at %v",
				a.MarkerRadius, sizes[i-1], b.MarkerRadius, sizes[i])
		}
		if b.CapWidth <= a.CapWidth {
			t.Errorf("CapWidth not monotonic: %v at %v, %v at %v",
				a.CapWidth, sizes[i-1], b.CapWidth, sizes[i])
		}
	}
}

func TestInstallAffectsNewObjectsOnly(t *testing.T) {
	resetDefaults(t)

	xys := make(plotter.XYs, 3)
	for i := range xys {
		xys[i].X, xys[i].Y = float64(i), float64(i)
	}

	before, err := plotter.NewLine(xys)
	require.NoError(t, err)
	oldWidth := before.LineStyle.Width

	SetInkWeight(vg.Points(24))

	after, err := plotter.NewLine(xys)
	require.NoError(t, err)

	if before.LineStyle.Width != oldWidth {
		t.Errorf("existing line changed: got %v want %v", before.LineStyle.Width, oldWidth)
	}
	if after.LineStyle.Width != vg.Points(2) {
		t.Errorf("new line: got width %v want %v", after.LineStyle.Width, vg.Points(2))
	}

	sc, err := plotter.NewScatter(xys)
	require.NoError(t, err)
	if sc.GlyphStyle.Radius != vg.Points(6) {
		t.Errorf("new scatter: got radius %v want %v", sc.GlyphStyle.Radius, vg.Points(6))
	}

	g := plotter.NewGrid()
	if g.Vertical.Width != vg.Points(1) {
		t.Errorf("new grid: got width %v want %v", g.Vertical.Width, vg.Points(1))
	}
}

func TestNewUsesInstalledWeights(t *testing.T) {
	resetDefaults(t)

	SetInkWeight(vg.Points(8))
	p, err := New()
	require.NoError(t, err)

	w := WeightsFor(vg.Points(8))
	if p.X.LineStyle.Width != w.Line || p.Y.LineStyle.Width != w.Line {
		t.Errorf("got axis widths %v, %v want %v",
			p.X.LineStyle.Width, p.Y.LineStyle.Width, w.Line)
	}
	if p.X.Tick.Length != w.TickLength {
		t.Errorf("got tick length %v want %v", p.X.Tick.Length, w.TickLength)
	}
	if p.X.Label.TextStyle.Font.Size != w.FontSize {
		t.Errorf("got label font %v want %v", p.X.Label.TextStyle.Font.Size, w.FontSize)
	}
	if p.X.Tick.Label.Font.Size != w.SmallFontSize {
		t.Errorf("got tick font %v want %v", p.X.Tick.Label.Font.Size, w.SmallFontSize)
	}
}

// SetInkWeight after construction must leave existing axes alone,
// while AdjustLabelPadding reaches back into them.
func TestSetInkWeightNotRetroactive(t *testing.T) {
	resetDefaults(t)

	fig, err := NewFigure(2, 1)
	require.NoError(t, err)

	oldWidth := fig.Panel(0, 0).X.LineStyle.Width
	oldPad := fig.Panel(0, 0).X.Padding

	SetInkWeight(vg.Points(8))
	for _, p := range fig.Axes() {
		if p.X.LineStyle.Width != oldWidth {
			t.Errorf("axis width changed retroactively: got %v want %v",
				p.X.LineStyle.Width, oldWidth)
		}
	}

	AdjustLabelPadding(vg.Points(8), fig)
	want := WeightsFor(vg.Points(8)).LabelPad
	for _, p := range fig.Axes() {
		if p.X.Padding != want || p.Y.Padding != want {
			t.Errorf("got padding %v, %v want %v", p.X.Padding, p.Y.Padding, want)
		}
	}
	if want == oldPad {
		t.Fatalf("padding %v unchanged from construction default", want)
	}
}
