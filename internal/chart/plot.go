// Package chart lays out a weight history as a line chart: points at
// x = 1..N, padded y bounds and axis ticks. Drawing is left to the UI.
package chart

import "math"

// Axis labels and title.
const (
	Title  = "Weight Tracking Trend"
	XLabel = "Records"
	YLabel = "Weight (kg)"
)

// yTickCount is the number of labelled y-axis ticks including both bounds.
const yTickCount = 5

// flatPadding pads the y range of a constant series, in kg.
const flatPadding = 1.0

// Point is one weight entry in chart coordinates.
type Point struct {
	X int
	Y float64
}

// Plot is the layout of one weight series.
type Plot struct {
	Points []Point
	MinY   float64
	MaxY   float64
	XTicks []int
	YTicks []float64
}

// Layout computes the plot for weights in entry order. An empty input
// yields an empty plot.
func Layout(weights []float64) Plot {
	if len(weights) == 0 {
		return Plot{}
	}

	p := Plot{
		Points: make([]Point, len(weights)),
		XTicks: make([]int, len(weights)),
	}

	lo, hi := weights[0], weights[0]
	for i, w := range weights {
		p.Points[i] = Point{X: i + 1, Y: w}
		p.XTicks[i] = i + 1
		lo = math.Min(lo, w)
		hi = math.Max(hi, w)
	}

	pad := (hi - lo) * 0.05
	if hi == lo {
		pad = flatPadding
	}
	// Bounds stay finite for weights near the float64 limit.
	lo = math.Max(lo-pad, -math.MaxFloat64)
	hi = math.Min(hi+pad, math.MaxFloat64)
	p.MinY, p.MaxY = lo, hi

	p.YTicks = make([]float64, yTickCount)
	step := (hi - lo) / (yTickCount - 1)
	for i := range p.YTicks {
		p.YTicks[i] = lo + float64(i)*step
	}
	return p
}

// Empty reports whether the plot has nothing to draw.
func (p Plot) Empty() bool {
	return len(p.Points) == 0
}

// Project maps pt into a width x height pixel area with the origin at the
// top left. A single point is centred horizontally.
func (p Plot) Project(pt Point, width, height float32) (x, y float32) {
	n := len(p.Points)
	if n <= 1 {
		x = width / 2
	} else {
		x = width * float32(pt.X-1) / float32(n-1)
	}
	return x, p.ProjectY(pt.Y, height)
}

// ProjectY maps a weight to a pixel row in an area of the given height.
func (p Plot) ProjectY(v float64, height float32) float32 {
	span := p.MaxY - p.MinY
	if span == 0 {
		return height / 2
	}
	return height * float32((p.MaxY-v)/span)
}
