package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// buttonPalette is the fill and label color of one button state.
type buttonPalette struct {
	fill  color.Color
	label color.Color
}

var (
	calcPalette = buttonPalette{
		fill:  color.NRGBA{R: 33, G: 150, B: 243, A: 255},
		label: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	inactivePalette = buttonPalette{
		fill:  color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		label: color.NRGBA{R: 100, G: 100, B: 100, A: 255},
	}
)

// CalcButton is the flat, bold primary action of the window.
type CalcButton struct {
	widget.Button
	palette buttonPalette
}

// NewCalcButton creates a primary button drawn in the calculate palette.
func NewCalcButton(label string, tapped func()) *CalcButton {
	b := &CalcButton{palette: calcPalette}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

func (b *CalcButton) colors() buttonPalette {
	if b.Disabled() {
		return inactivePalette
	}
	return b.palette
}

func (b *CalcButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	pal := b.colors()
	fill := canvas.NewRectangle(pal.fill)
	fill.CornerRadius = theme.InputRadiusSize()

	text := canvas.NewText(b.Text, pal.label)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}

	return &calcButtonRenderer{button: b, fill: fill, text: text}
}

type calcButtonRenderer struct {
	button *CalcButton
	fill   *canvas.Rectangle
	text   *canvas.Text
}

func (r *calcButtonRenderer) Layout(size fyne.Size) {
	r.fill.Resize(size)
	ts := r.text.MinSize()
	r.text.Resize(ts)
	r.text.Move(fyne.NewPos((size.Width-ts.Width)/2, (size.Height-ts.Height)/2))
}

func (r *calcButtonRenderer) MinSize() fyne.Size {
	ts := r.text.MinSize()
	p := theme.InnerPadding()
	return ts.Add(fyne.NewSize(p*4, p*2))
}

func (r *calcButtonRenderer) Refresh() {
	pal := r.button.colors()
	r.fill.FillColor = pal.fill
	r.text.Color = pal.label
	r.text.Text = r.button.Text
	r.fill.Refresh()
	r.text.Refresh()
}

func (r *calcButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.text}
}

func (r *calcButtonRenderer) Destroy() {}
