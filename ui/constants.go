package ui

import (
	"image/color"

	"fyne.io/fyne/v2"

	"bmi-tool/internal/bmi"
)

// Window dimensions
const (
	WindowWidth  = 900
	WindowHeight = 620
)

// Split ratios
const (
	MainSplitRatio = 0.42 // 42% left (form + result), 58% right (chart/history)
)

// WeightChart dimensions
const (
	ChartMinWidth  = 360
	ChartMinHeight = 260
)

// ResultView dimensions
const (
	ResultViewMinWidth  = 320
	ResultViewMinHeight = 140
)

var categoryColors = map[bmi.Category]color.Color{
	bmi.Underweight: color.NRGBA{R: 3, G: 169, B: 244, A: 255},
	bmi.Normal:      color.NRGBA{R: 76, G: 175, B: 80, A: 255},
	bmi.Overweight:  color.NRGBA{R: 244, G: 67, B: 54, A: 255},
}

// CategoryColor returns the badge color for c.
func CategoryColor(c bmi.Category) color.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return categoryColors[bmi.Overweight]
}

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewChartMinSize returns the minimum size for the weight chart
func NewChartMinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

// NewResultViewMinSize returns the minimum size for the result view
func NewResultViewMinSize() fyne.Size {
	return fyne.NewSize(ResultViewMinWidth, ResultViewMinHeight)
}
