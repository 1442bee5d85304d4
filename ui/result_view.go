package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"bmi-tool/internal/bmi"
	"bmi-tool/internal/session"
)

const resultPlaceholder = "Enter your height and weight, then press Calculate."

// ResultView shows the display text of the latest calculation with a
// colored category badge above it.
type ResultView struct {
	badge     *canvas.Text
	text      *adviceText
	scrollBox *container.Scroll
	container *fyne.Container
}

// NewResultView creates an empty result view.
func NewResultView() *ResultView {
	rv := &ResultView{}

	rv.badge = canvas.NewText("", color.Transparent)
	rv.badge.TextStyle = fyne.TextStyle{Bold: true}
	rv.badge.TextSize = theme.TextSubHeadingSize()

	rv.text = newAdviceText(resultPlaceholder)

	rv.scrollBox = container.NewVScroll(rv.text)
	rv.scrollBox.SetMinSize(NewResultViewMinSize())

	rv.container = container.NewBorder(rv.badge, nil, nil, nil, rv.scrollBox)
	return rv
}

// Container returns the result view's container.
func (rv *ResultView) Container() *fyne.Container {
	return rv.container
}

// SetResult shows a successful calculation.
func (rv *ResultView) SetResult(o *session.Outcome) {
	c := o.Record.Category
	rv.badge.Text = c.String() + "  (BMI " + bmi.FormatValue(o.Record.BMI) + ")"
	rv.badge.Color = CategoryColor(c)
	rv.badge.Refresh()

	rv.text.SetText(o.Display)
}

// Text returns the displayed result text.
func (rv *ResultView) Text() string {
	return rv.text.Text
}
