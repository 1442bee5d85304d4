package main

import (
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2/app"

	"bmi-tool/internal/cli"
	"bmi-tool/internal/logging"
	"bmi-tool/ui"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run dispatches to the GUI or CLI and returns the process exit code.
func run(stderr io.Writer) int {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		if len(os.Args) > 1 {
			return 0 // help was printed
		}
		runGUI()
		return 0
	}

	// CLI mode
	if err := runCLI(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runGUI() {
	logger, err := logging.New("info", logging.FormatConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.NewWithID("com.bmi-tool.gui")
	win := ui.BuildMainWindow(a, logger)
	win.ShowAndRun()
}

func runCLI(cfg *cli.RunnerConfig) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	_, err = cli.Run(*cfg, logger, os.Stdout)
	return err
}
