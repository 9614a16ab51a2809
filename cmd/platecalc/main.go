package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/plate-calculator/internal/application"
	"github.com/eugenenazirov/plate-calculator/internal/chart"
	"github.com/eugenenazirov/plate-calculator/internal/config"
	"github.com/eugenenazirov/plate-calculator/internal/logging"
	"github.com/eugenenazirov/plate-calculator/internal/narrator"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "platecalc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("platecalc", "Plate Calculator - works out which plates to load on each side of a barbell")
	configFile := kingpinApp.Flag("config", "Path to YAML or TOML configuration file").String()
	envFile := kingpinApp.Flag("env-file", "Path to a dotenv file (defaults to .env when present)").String()
	platesStr := kingpinApp.Flag("plates", "Comma-separated plate inventory, one entry per plate pair").String()
	var barWeightSet bool
	barWeight := kingpinApp.Flag("bar-weight", "Weight of the unloaded bar").IsSetByUser(&barWeightSet).Float64()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	describeCmd := kingpinApp.Command("describe", "Explain which plates reach a total weight")
	describeWeight := describeCmd.Arg("weight", "Total weight required, bar included").Required().Float64()

	selectCmd := kingpinApp.Command("select", "Print the plates for one side of the bar")
	selectWeight := selectCmd.Arg("weight", "Total weight required, bar included").Required().Float64()

	chartCmd := kingpinApp.Command("chart", "Print a loading chart for a range of weights")
	var chartFromSet, chartToSet bool
	chartFrom := chartCmd.Flag("from", "First weight (defaults to the bar weight)").IsSetByUser(&chartFromSet).Float64()
	chartTo := chartCmd.Flag("to", "Last weight (defaults to the heaviest possible load)").IsSetByUser(&chartToSet).Float64()
	chartStep := chartCmd.Flag("step", "Increment between weights, greater than zero").Default("5").Float64()
	chartXLSX := chartCmd.Flag("xlsx", "Also write the chart to this Excel file").String()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
	}

	if *platesStr != "" {
		overrides.PlatesStr = platesStr
	}

	if barWeightSet {
		overrides.BarWeight = barWeight
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}

	switch command {
	case describeCmd.FullCommand():
		msg, err := app.Describe(*describeWeight)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, msg)

	case selectCmd.FullCommand():
		result, err := app.Select(*selectWeight)
		if err != nil {
			return err
		}
		printSelection(stdout, result.Plates, result.WeightAchieved)

	case chartCmd.FullCommand():
		r := chart.Range{Step: chartStep}
		if chartFromSet {
			r.From = chartFrom
		}
		if chartToSet {
			r.To = chartTo
		}
		rows, err := app.Chart(r)
		if err != nil {
			return err
		}
		if err := chart.WriteText(stdout, rows); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		if *chartXLSX != "" {
			if err := app.ExportChart(*chartXLSX, rows); err != nil {
				return err
			}
		}
	}

	return nil
}

func printSelection(w io.Writer, perSide []float64, achieved float64) {
	fmt.Fprint(w, "Per side:")
	if len(perSide) == 0 {
		fmt.Fprint(w, " none")
	}
	for _, p := range perSide {
		fmt.Fprintf(w, " %s", narrator.FormatWeight(p))
	}
	fmt.Fprintf(w, "\nAchieved: %slbs\n", narrator.FormatWeight(achieved))
}
