package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func countObjects(objs []fyne.CanvasObject) (circles, lines, texts int) {
	for _, o := range objs {
		switch o.(type) {
		case *canvas.Circle:
			circles++
		case *canvas.Line:
			lines++
		case *canvas.Text:
			texts++
		}
	}
	return
}

func TestWeightChartEmptyDrawsNothing(t *testing.T) {
	test.NewTempApp(t)

	c := NewWeightChart()
	c.Resize(fyne.NewSize(400, 300))

	assert.Empty(t, test.WidgetRenderer(c).Objects())

	c.Update(nil)
	assert.Empty(t, test.WidgetRenderer(c).Objects())
}

func TestWeightChartDrawsPoints(t *testing.T) {
	test.NewTempApp(t)

	c := NewWeightChart()
	c.Resize(fyne.NewSize(400, 300))
	c.Update([]float64{60, 62, 61})

	circles, lines, texts := countObjects(test.WidgetRenderer(c).Objects())
	assert.Equal(t, 3, circles)
	// 5 grid lines, 2 axes, 2 segments
	assert.Equal(t, 9, lines)
	// title, 5 y labels, 3 x labels, 2 axis labels
	assert.Equal(t, 11, texts)
}

func TestWeightChartRedrawsFromScratch(t *testing.T) {
	test.NewTempApp(t)

	c := NewWeightChart()
	c.Resize(fyne.NewSize(400, 300))
	c.Update([]float64{60, 62, 61})
	c.Update([]float64{70})

	circles, _, _ := countObjects(test.WidgetRenderer(c).Objects())
	assert.Equal(t, 1, circles)

	c.Update(nil)
	assert.Empty(t, test.WidgetRenderer(c).Objects())
}

func TestWeightChartMinSize(t *testing.T) {
	test.NewTempApp(t)

	c := NewWeightChart()
	assert.Equal(t, NewChartMinSize(), c.MinSize())
}
