package export

import (
	"fmt"
	"os"

	"bmi-tool/internal/format"
	"bmi-tool/internal/model"
)

// WriteTXT writes records to a text file as a formatted report.
func WriteTXT(path string, records []model.Record) error {
	if err := os.WriteFile(path, []byte(format.Report(records)+"\n"), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
