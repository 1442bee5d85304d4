package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"bmi-tool/internal/bmi"
	"bmi-tool/internal/model"
)

var historyColumns = []string{"#", "Time", "Height (cm)", "Weight (kg)", "BMI", "Category"}

// HistoryView displays a table of the session's accepted calculations.
type HistoryView struct {
	records []model.Record
	table   *widget.Table
}

// NewHistoryView creates a new history table view.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 40)  // #
	hv.table.SetColumnWidth(1, 90)  // Time
	hv.table.SetColumnWidth(2, 100) // Height
	hv.table.SetColumnWidth(3, 100) // Weight
	hv.table.SetColumnWidth(4, 70)  // BMI
	hv.table.SetColumnWidth(5, 110) // Category

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddRecord appends a record to the table.
func (hv *HistoryView) AddRecord(r model.Record) {
	hv.records = append(hv.records, r)
	hv.table.Refresh()
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	return len(hv.records) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(historyColumns[id.Col])
		return
	}

	idx := id.Row - 1
	if idx >= len(hv.records) {
		label.SetText("")
		return
	}

	label.TextStyle = fyne.TextStyle{}
	label.SetText(cellText(idx, &hv.records[idx], id.Col))
}

func cellText(idx int, r *model.Record, col int) string {
	switch col {
	case 0:
		return fmt.Sprintf("%d", idx+1)
	case 1:
		return r.Timestamp.Format("15:04:05")
	case 2:
		return r.HeightText
	case 3:
		return r.WeightText
	case 4:
		return bmi.FormatValue(r.BMI)
	case 5:
		return r.Category.String()
	}
	return ""
}
