package cli

import (
	"flag"
	"fmt"
	"os"

	"bmi-tool/internal/logging"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments are given (GUI mode) or help is requested.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		LogLevel:  "info",
		LogFormat: logging.FormatConsole,
	}

	fs := flag.NewFlagSet("bmi-tool", flag.ContinueOnError)

	// Measurement flags
	fs.StringVar(&cfg.Height, "H", "", "Height in centimeters")
	fs.StringVar(&cfg.Height, "height", "", "Height in centimeters")
	fs.StringVar(&cfg.Weight, "W", "", "Weight in kilograms")
	fs.StringVar(&cfg.Weight, "weight", "", "Weight in kilograms")

	// Output flags
	fs.StringVar(&cfg.OutputCSV, "o", "", "Append result to CSV file")
	fs.StringVar(&cfg.OutputCSV, "output", "", "Append result to CSV file")
	fs.StringVar(&cfg.OutputTXT, "txt", "", "Write result report to text file")
	fs.StringVar(&cfg.OutputXLSX, "xlsx", "", "Write result to Excel workbook")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	// Logging flags
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.Height == "" || cfg.Weight == "" {
		PrintUsage()
		return nil, fmt.Errorf("both -height and -weight are required")
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat != logging.FormatConsole && cfg.LogFormat != logging.FormatJSON {
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `BMI Calculator

Usage: bmi-tool [flags]
       bmi-tool            (no flags: start the GUI)
       bmi-tool help       (show this message)

MEASUREMENT:
  -H, -height <cm>         Height in centimeters (required)
  -W, -weight <kg>         Weight in kilograms (required)

OUTPUT:
  -o, -output <file>       Append result to CSV file
  -txt <file>              Write result report to text file
  -xlsx <file>             Write result to Excel workbook
  -v, -verbose             Verbose output

LOGGING:
  -log-level <level>       debug, info, warn, error (default: info)
  -log-format <fmt>        console or json (default: console)

EXAMPLES:
  # Calculate BMI
  bmi-tool -height 170 -weight 65

  # Calculate and append to a CSV log
  bmi-tool -H 175 -W 70 -o bmi.csv -v

`)
}
