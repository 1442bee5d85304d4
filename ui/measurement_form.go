package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const prefHeight = "form.height"

// MeasurementForm holds the height and weight entries.
type MeasurementForm struct {
	heightEntry *widget.Entry
	weightEntry *widget.Entry
	form        *fyne.Container
}

// NewMeasurementForm creates an empty measurement form.
func NewMeasurementForm() *MeasurementForm {
	mf := &MeasurementForm{}

	mf.heightEntry = widget.NewEntry()
	mf.heightEntry.SetPlaceHolder("Enter height (cm)")

	mf.weightEntry = widget.NewEntry()
	mf.weightEntry.SetPlaceHolder("Enter weight (kg)")

	mf.form = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Height (cm)", mf.heightEntry),
			widget.NewFormItem("Weight (kg)", mf.weightEntry),
		),
	)
	return mf
}

// Container returns the form's Fyne container.
func (mf *MeasurementForm) Container() *fyne.Container {
	return mf.form
}

// Values returns the raw entry texts.
func (mf *MeasurementForm) Values() (height, weight string) {
	return mf.heightEntry.Text, mf.weightEntry.Text
}

// SetValues fills both entries.
func (mf *MeasurementForm) SetValues(height, weight string) {
	mf.heightEntry.SetText(height)
	mf.weightEntry.SetText(weight)
}

// OnSubmit calls fn when Enter is pressed in either entry.
func (mf *MeasurementForm) OnSubmit(fn func()) {
	submit := func(string) { fn() }
	mf.heightEntry.OnSubmitted = submit
	mf.weightEntry.OnSubmitted = submit
}

// LoadPreferences restores the last height. Weights are never restored.
func (mf *MeasurementForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String(prefHeight); v != "" {
		mf.heightEntry.SetText(v)
	}
}

// SavePreferences persists the current height.
func (mf *MeasurementForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString(prefHeight, mf.heightEntry.Text)
}
