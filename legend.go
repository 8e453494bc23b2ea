package printplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LegendBox is a plot legend with a backdrop. The plot package draws
// legend entries straight over the data; printed figures want the
// boxed look, so LegendBox fills and frames the rectangle the entries
// will occupy before drawing them. The zero Frame and a nil Fill draw
// nothing but the entries.
type LegendBox struct {
	plot.Legend
	Frame draw.LineStyle
	Fill  color.Color

	labels []string
}

// NewLegendBox returns a legend with text at fontSize, anchored to the
// top right, with the default print look: thin gray frame over an
// opaque white fill.
func NewLegendBox(fontSize vg.Length) (*LegendBox, error) {
	fnt, err := vg.MakeFont(plot.DefaultFont, fontSize)
	if err != nil {
		return nil, err
	}
	l := &LegendBox{
		Frame: draw.LineStyle{Color: BuiltinColors["gray20"], Width: vg.Points(0.5)},
		Fill:  BuiltinColors["white"],
	}
	l.TextStyle = draw.TextStyle{Color: color.Black, Font: fnt}
	l.ThumbnailWidth = vg.Points(16)
	l.Padding = vg.Points(2)
	l.Top = true
	return l, nil
}

// Add records the entry label for backdrop sizing and adds the entry
// to the legend.
func (l *LegendBox) Add(name string, thumbs ...plot.Thumbnailer) {
	l.labels = append(l.labels, name)
	l.Legend.Add(name, thumbs...)
}

// Draw fills and strokes the backdrop, then draws the entries onto c.
func (l *LegendBox) Draw(c draw.Canvas) {
	if len(l.labels) > 0 {
		min, max := l.rect(c)
		pts := []vg.Point{
			{X: min.X, Y: min.Y},
			{X: min.X, Y: max.Y},
			{X: max.X, Y: max.Y},
			{X: max.X, Y: min.Y},
		}
		if l.Fill != nil {
			c.FillPolygon(l.Fill, pts)
		}
		if l.Frame.Width > 0 && l.Frame.Color != nil {
			c.StrokeLines(l.Frame, append(pts, pts[0]))
		}
	}
	l.Legend.Draw(c)
}

// rect reports the backdrop corners on c, following the anchoring the
// legend itself uses: entries stack from the Top/Left corner chosen by
// the Legend fields, shifted by XOffs/YOffs, one Padding of margin
// around the entries.
func (l *LegendBox) rect(c draw.Canvas) (min, max vg.Point) {
	var tw, eh vg.Length
	for _, s := range l.labels {
		if w := l.TextStyle.Width(s); w > tw {
			tw = w
		}
		if h := l.TextStyle.Height(s); h > eh {
			eh = h
		}
	}
	n := vg.Length(len(l.labels))
	w := l.ThumbnailWidth + 3*l.Padding + tw
	h := n*eh + (n+1)*l.Padding

	if l.Left {
		min.X = c.Min.X + l.XOffs
		max.X = min.X + w
	} else {
		max.X = c.Max.X + l.XOffs
		min.X = max.X - w
	}
	if l.Top {
		max.Y = c.Max.Y + l.YOffs
		min.Y = max.Y - h
	} else {
		min.Y = c.Min.Y + l.YOffs
		max.Y = min.Y + h
	}
	return min, max
}
