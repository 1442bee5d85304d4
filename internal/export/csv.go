package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"bmi-tool/internal/bmi"
	"bmi-tool/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"record_id",
	"session_id",
	"height_cm",
	"weight_kg",
	"bmi",
	"category",
	"see_doctor",
}

// WriteCSV writes records to a CSV file (semicolon-separated). The header
// row is written when the file is new or empty; otherwise rows are appended.
func WriteCSV(path string, records []model.Record) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat csv file: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'

	if info.Size() == 0 {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for i := range records {
		if err := w.Write(csvRow(&records[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func csvRow(r *model.Record) []string {
	return []string{
		r.Timestamp.Format("02.01.2006"),
		r.Timestamp.Format("15:04:05"),
		r.ID,
		r.SessionID,
		strconv.FormatFloat(r.HeightCm, 'f', -1, 64),
		strconv.FormatFloat(r.WeightKg, 'f', -1, 64),
		bmi.FormatValue(r.BMI),
		r.Category.String(),
		r.SeeDoctor(),
	}
}
