package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"bmi-tool/internal/chart"
)

// Plot area margins inside the widget.
const (
	chartMarginLeft   = 52
	chartMarginRight  = 16
	chartMarginTop    = 30
	chartMarginBottom = 40
	chartPointRadius  = 3
	chartMaxXLabels   = 15
)

// WeightChart draws the weight history as a line chart.
type WeightChart struct {
	widget.BaseWidget
	plot chart.Plot
}

// NewWeightChart creates an empty chart.
func NewWeightChart() *WeightChart {
	c := &WeightChart{}
	c.ExtendBaseWidget(c)
	return c
}

// Update replaces the plotted series. The chart is redrawn from scratch;
// an empty series draws nothing.
func (c *WeightChart) Update(weights []float64) {
	c.plot = chart.Layout(weights)
	c.Refresh()
}

// Plot returns the current layout.
func (c *WeightChart) Plot() chart.Plot {
	return c.plot
}

// CreateRenderer returns the chart renderer.
func (c *WeightChart) CreateRenderer() fyne.WidgetRenderer {
	c.ExtendBaseWidget(c)
	r := &weightChartRenderer{chart: c}
	r.rebuild(c.Size())
	return r
}

type weightChartRenderer struct {
	chart   *WeightChart
	objects []fyne.CanvasObject
}

func (r *weightChartRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

func (r *weightChartRenderer) MinSize() fyne.Size {
	return NewChartMinSize()
}

func (r *weightChartRenderer) Refresh() {
	r.rebuild(r.chart.Size())
	canvas.Refresh(r.chart)
}

func (r *weightChartRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *weightChartRenderer) Destroy()                     {}

// rebuild discards every drawn object and lays the plot out again for size.
func (r *weightChartRenderer) rebuild(size fyne.Size) {
	r.objects = nil

	p := r.chart.plot
	if p.Empty() {
		return
	}

	fg := theme.Color(theme.ColorNameForeground)
	grid := theme.Color(theme.ColorNameSeparator)
	line := theme.Color(theme.ColorNamePrimary)
	small := theme.CaptionTextSize()

	w := size.Width - chartMarginLeft - chartMarginRight
	h := size.Height - chartMarginTop - chartMarginBottom
	if w <= 0 || h <= 0 {
		return
	}
	origin := fyne.NewPos(chartMarginLeft, chartMarginTop)

	title := canvas.NewText(chart.Title, fg)
	title.TextStyle = fyne.TextStyle{Bold: true}
	r.addText(title, fyne.NewPos((size.Width-title.MinSize().Width)/2, 4))

	for _, v := range p.YTicks {
		y := origin.Y + p.ProjectY(v, h)
		r.add(newLine(grid, origin.X, y, origin.X+w, y))

		label := canvas.NewText(fmt.Sprintf("%.1f", v), fg)
		label.TextSize = small
		ls := label.MinSize()
		r.addText(label, fyne.NewPos(origin.X-ls.Width-4, y-ls.Height/2))
	}

	r.add(newLine(fg, origin.X, origin.Y, origin.X, origin.Y+h))
	r.add(newLine(fg, origin.X, origin.Y+h, origin.X+w, origin.Y+h))

	every := 1
	if n := len(p.XTicks); n > chartMaxXLabels {
		every = (n + chartMaxXLabels - 1) / chartMaxXLabels
	}
	for i, tick := range p.XTicks {
		if i%every != 0 {
			continue
		}
		x, _ := p.Project(chart.Point{X: tick}, w, h)
		label := canvas.NewText(fmt.Sprintf("%d", tick), fg)
		label.TextSize = small
		r.addText(label, fyne.NewPos(origin.X+x-label.MinSize().Width/2, origin.Y+h+4))
	}

	xLabel := canvas.NewText(chart.XLabel, fg)
	xLabel.TextSize = small
	xs := xLabel.MinSize()
	r.addText(xLabel, fyne.NewPos(origin.X+(w-xs.Width)/2, size.Height-xs.Height-2))

	yLabel := canvas.NewText(chart.YLabel, fg)
	yLabel.TextSize = small
	r.addText(yLabel, fyne.NewPos(4, chartMarginTop-yLabel.MinSize().Height-2))

	var prev fyne.Position
	for i, pt := range p.Points {
		x, y := p.Project(pt, w, h)
		pos := fyne.NewPos(origin.X+x, origin.Y+y)
		if i > 0 {
			seg := newLine(line, prev.X, prev.Y, pos.X, pos.Y)
			seg.StrokeWidth = 2
			r.add(seg)
		}
		prev = pos
	}
	for _, pt := range p.Points {
		x, y := p.Project(pt, w, h)
		dot := canvas.NewCircle(line)
		dot.Move(fyne.NewPos(origin.X+x-chartPointRadius, origin.Y+y-chartPointRadius))
		dot.Resize(fyne.NewSize(chartPointRadius*2, chartPointRadius*2))
		r.add(dot)
	}
}

func (r *weightChartRenderer) add(o fyne.CanvasObject) {
	r.objects = append(r.objects, o)
}

func (r *weightChartRenderer) addText(t *canvas.Text, pos fyne.Position) {
	t.Move(pos)
	t.Resize(t.MinSize())
	r.add(t)
}

func newLine(col color.Color, x1, y1, x2, y2 float32) *canvas.Line {
	l := canvas.NewLine(col)
	l.StrokeWidth = 1
	l.Position1 = fyne.NewPos(x1, y1)
	l.Position2 = fyne.NewPos(x2, y2)
	return l
}
