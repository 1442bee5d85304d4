package ui

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"bmi-tool/internal/export"
	"bmi-tool/internal/session"
)

// Dialog titles and messages for failed calculations.
const (
	titleInputError       = "Input error"
	titleCalculationError = "Calculation error"
	titleExport           = "Export"

	msgNotNumber   = "Please enter numbers in a valid format"
	msgNotPositive = "Height and weight must both be greater than 0"
	msgCalculation = "Calculation failed, please check your input"
)

// Controls manages the Calculate and Export buttons and wires a calculation
// through the session into the result view, chart and history table.
type Controls struct {
	session *session.Session
	logger  *zap.Logger
	window  fyne.Window

	calcBtn   *CalcButton
	exportBtn *widget.Button

	form        *MeasurementForm
	resultView  *ResultView
	chart       *WeightChart
	historyView *HistoryView

	// alert shows a message to the user; replaced in tests.
	alert func(title, message string)

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(s *session.Session, logger *zap.Logger, mf *MeasurementForm, rv *ResultView, wc *WeightChart, hv *HistoryView) *Controls {
	c := &Controls{
		session:     s,
		logger:      logger,
		form:        mf,
		resultView:  rv,
		chart:       wc,
		historyView: hv,
	}
	c.alert = c.showDialog

	c.calcBtn = NewCalcButton("Calculate", c.onCalculate)
	c.exportBtn = widget.NewButton("Export…", c.onExport)
	c.exportBtn.Disable()

	mf.OnSubmit(c.onCalculate)

	c.container = container.NewHBox(c.calcBtn, c.exportBtn)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// SetWindow sets the parent window for dialogs.
func (c *Controls) SetWindow(w fyne.Window) {
	c.window = w
}

func (c *Controls) onCalculate() {
	h, w := c.form.Values()

	outcome, err := c.session.Calculate(h, w)
	if err != nil {
		title, msg := errorMessage(err)
		c.alert(title, msg)
		return
	}

	c.resultView.SetResult(outcome)
	c.chart.Update(outcome.History)
	c.historyView.AddRecord(outcome.Record)
	c.exportBtn.Enable()
}

// errorMessage maps a session error to a dialog title and message.
func errorMessage(err error) (title, msg string) {
	switch {
	case errors.Is(err, session.ErrNotNumber):
		return titleInputError, msgNotNumber
	case errors.Is(err, session.ErrNotPositive):
		return titleInputError, msgNotPositive
	default:
		return titleCalculationError, msgCalculation
	}
}

func (c *Controls) onExport() {
	if len(c.session.Records()) == 0 {
		c.alert(titleExport, "No results to export.")
		return
	}
	if c.window == nil {
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		msg, exportErr := c.exportTo(path)
		if exportErr != nil {
			dialog.ShowError(exportErr, c.window)
			return
		}
		c.alert(titleExport, msg)
	}, c.window)
	save.SetFileName(export.BuildPath("bmi", ".csv", time.Now()))
	save.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	save.Show()
}

// exportTo writes the session's records as CSV at path plus TXT and XLSX
// siblings, and returns a summary for the user.
func (c *Controls) exportTo(path string) (string, error) {
	records := c.session.Records()

	if err := export.WriteCSV(path, records); err != nil {
		c.logger.Warn("csv export failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("CSV export: %w", err)
	}
	txtPath := export.SiblingPath(path, ".txt")
	if err := export.WriteTXT(txtPath, records); err != nil {
		c.logger.Warn("txt export failed", zap.String("path", txtPath), zap.Error(err))
		return "", fmt.Errorf("TXT export: %w", err)
	}
	xlsxPath := export.SiblingPath(path, ".xlsx")
	if err := export.WriteXLSX(xlsxPath, records); err != nil {
		c.logger.Warn("xlsx export failed", zap.String("path", xlsxPath), zap.Error(err))
		return "", fmt.Errorf("XLSX export: %w", err)
	}

	c.logger.Info("session exported", zap.String("path", path), zap.Int("records", len(records)))
	return fmt.Sprintf("Exported %d results to\n%s\n%s\n%s", len(records), path, txtPath, xlsxPath), nil
}

func (c *Controls) showDialog(title, message string) {
	if c.window == nil {
		return
	}
	dialog.ShowInformation(title, message, c.window)
}
