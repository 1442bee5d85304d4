package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"bmi-tool/internal/export"
	"bmi-tool/internal/model"
	"bmi-tool/internal/session"
)

// RunnerConfig holds all CLI options for a single calculation.
type RunnerConfig struct {
	// Measurement, as entered
	Height string
	Weight string

	// Output
	OutputCSV  string
	OutputTXT  string
	OutputXLSX string
	Verbose    bool

	// Logging
	LogLevel  string
	LogFormat string
}

// Run performs one calculation, prints the result to out and writes any
// requested export files.
func Run(cfg RunnerConfig, logger *zap.Logger, out io.Writer) (*session.Outcome, error) {
	s := session.New(logger)

	outcome, err := s.Calculate(cfg.Height, cfg.Weight)
	if err != nil {
		if session.IsInputError(err) {
			return nil, fmt.Errorf("invalid input: %w", err)
		}
		return nil, err
	}

	fmt.Fprintln(out, outcome.Display)
	if cfg.Verbose {
		fmt.Fprintf(out, "Category: %s\n", outcome.Record.Category)
	}

	if err := writeExports(cfg, s.Records(), out); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func writeExports(cfg RunnerConfig, records []model.Record, out io.Writer) error {
	targets := []struct {
		path  string
		write func(string, []model.Record) error
		kind  string
	}{
		{cfg.OutputCSV, export.WriteCSV, "CSV"},
		{cfg.OutputTXT, export.WriteTXT, "TXT"},
		{cfg.OutputXLSX, export.WriteXLSX, "XLSX"},
	}

	for _, t := range targets {
		if t.path == "" {
			continue
		}
		if err := export.EnsureDir(t.path); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := t.write(t.path, records); err != nil {
			return fmt.Errorf("save %s: %w", t.kind, err)
		}
		if cfg.Verbose {
			fmt.Fprintf(out, "Result saved to: %s\n", t.path)
		}
	}
	return nil
}
