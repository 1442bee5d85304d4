package format

import (
	"fmt"
	"strings"

	"bmi-tool/internal/bmi"
	"bmi-tool/internal/model"
)

// FormatDisplay builds the text shown after a successful calculation.
// Height and weight are echoed exactly as entered.
func FormatDisplay(heightText, weightText, advice string) string {
	return fmt.Sprintf("Height: %s cm  Weight: %s kg\n%s", heightText, weightText, advice)
}

// FormatRecordHeader returns a header line for tabular record output.
func FormatRecordHeader() string {
	return fmt.Sprintf("%-4s %-19s %10s %10s %8s  %s", "#", "Time", "Height", "Weight", "BMI", "Category")
}

// FormatRecordLine produces a single formatted line for a record.
func FormatRecordLine(n int, r *model.Record) string {
	return fmt.Sprintf("%-4d %-19s %7.1f cm %7.1f kg %8s  %s",
		n, r.Timestamp.Format("2006-01-02 15:04:05"), r.HeightCm, r.WeightKg, bmi.FormatValue(r.BMI), r.Category)
}

// FormatRecord produces a human-readable block for one record.
func FormatRecord(r *model.Record) string {
	var b strings.Builder

	b.WriteString("=== BMI Result ===\n")
	b.WriteString(fmt.Sprintf("Timestamp:       %s\n", r.Timestamp.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Height:          %s cm\n", r.HeightText))
	b.WriteString(fmt.Sprintf("Weight:          %s kg\n", r.WeightText))
	b.WriteString(fmt.Sprintf("BMI:             %s\n", bmi.FormatValue(r.BMI)))
	b.WriteString(fmt.Sprintf("Category:        %s\n", r.Category))
	b.WriteString("\n--- Advice ---\n")
	b.WriteString(r.Advice().Text(r.BMI))
	b.WriteString("\n==================")
	return b.String()
}

// Report renders a session's records: a summary table followed by
// one block per record. An empty slice yields just the table header.
func Report(records []model.Record) string {
	var b strings.Builder

	b.WriteString(FormatRecordHeader())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 70))
	for i := range records {
		b.WriteString("\n")
		b.WriteString(FormatRecordLine(i+1, &records[i]))
	}

	for i := range records {
		b.WriteString("\n\n")
		b.WriteString(FormatRecord(&records[i]))
	}
	return b.String()
}
