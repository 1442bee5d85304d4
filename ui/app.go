package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"bmi-tool/internal/session"
)

// BuildMainWindow creates and configures the main application window.
// The window owns one session; its weight history lives until the app exits.
func BuildMainWindow(app fyne.App, logger *zap.Logger) fyne.Window {
	win := app.NewWindow("BMI Calculator")
	win.Resize(NewWindowSize())

	s := session.New(logger)
	form := NewMeasurementForm()
	resultView := NewResultView()
	weightChart := NewWeightChart()
	historyView := NewHistoryView()
	controls := NewControls(s, logger, form, resultView, weightChart, historyView)
	controls.SetWindow(win)

	prefs := app.Preferences()
	form.LoadPreferences(prefs)

	header := widget.NewLabelWithStyle("Body Mass Index", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	leftPanel := container.NewBorder(
		container.NewVBox(header, form.Container(), controls.Container(), widget.NewSeparator()),
		nil, nil, nil,
		resultView.Container(),
	)

	chartTab := container.NewTabItem("Weight Trend", weightChart)
	historyTab := container.NewTabItem("History", historyView.Container())
	tabs := container.NewAppTabs(chartTab, historyTab)

	content := container.NewHSplit(leftPanel, tabs)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	win.SetCloseIntercept(func() {
		form.SavePreferences(prefs)
		_ = logger.Sync()
		win.Close()
	})

	return win
}
