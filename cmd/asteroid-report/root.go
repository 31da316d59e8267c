package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"asteroidcli/internal/app"
	"asteroidcli/internal/config"
	apperrors "asteroidcli/internal/errors"
	"asteroidcli/internal/infrastructure"
	"asteroidcli/pkg/contracts"
)

const shutdownTimeout = 5 * time.Second

// rootFlags holds the values bound to the root command's flags
type rootFlags struct {
	output     string
	configFile string
}

// newRootCommand builds the asteroid-report command. A fresh command per call
// keeps flag state out of package globals.
func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   config.AppName + " <dataset.csv> [report.xlsx]",
		Short: "Summarize an asteroid dataset or export it as a styled spreadsheet",
		Long: `asteroid-report reads a CSV dataset of celestial objects and computes
diameter, albedo and perihelion statistics along with the near-Earth (NEO)
and potentially hazardous (PHA) subsets.

Without an output path a short summary is printed. With one, the full
report is written to an .xlsx file.

Examples:
  asteroid-report dataset.csv
  asteroid-report dataset.csv report.xlsx
  asteroid-report dataset.csv -o report.xlsx`,
		Version:       contracts.GetFullVersionString(),
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(args, flags.output)
			if err != nil {
				return err
			}
			return run(cmd, flags.configFile, opts)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to this .xlsx file instead of printing a summary")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "config file (default is asteroid-report.yaml or configs/asteroid-report.yaml)")

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("%v; usage: %s", err, cmd.UseLine()))
	}
	return nil
}

// resolveOptions maps positional arguments and the --output flag onto run options
func resolveOptions(args []string, output string) (app.Options, error) {
	opts := app.Options{DatasetPath: args[0], ReportPath: output}
	if len(args) == 2 {
		if output != "" {
			return app.Options{}, apperrors.NewValidationError(
				fmt.Sprintf("report path given twice: %q and --output %q", args[1], output))
		}
		opts.ReportPath = args[1]
	}
	return opts, nil
}

// run loads configuration, sets up logging and telemetry and executes the pipeline
func run(cmd *cobra.Command, configFile string, opts app.Options) (err error) {
	var cfg *config.Config
	if configFile != "" {
		cfg, err = config.LoadFrom(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize logger", err)
	}
	defer infrastructure.CloseLogFile()

	tel, err := infrastructure.InitializeTelemetry(cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := tel.Shutdown(ctx); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}()

	application, err := app.New(cfg, logger, tel, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx, opts)
}
