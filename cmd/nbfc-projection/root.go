package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/internal/forecast"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/output"
	"github.com/iwvelando/nbfc-projection/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options are the flags shared by every command.
type options struct {
	configPath   string
	envFile      string
	logLevel     string
	outputFormat string
	charts       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "nbfc-projection",
		Short:        "NBFC 12-month lending projection",
		Long:         "Project disbursement, revenue, costs, profit and AUM for a short-tenure lending book over twelve months.",
		SilenceUsage: true,
		Version:      version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProjection(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", constants.DefaultConfigFile, "path to configuration file (yaml or toml)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", constants.DefaultEnvFile, "dotenv file with NBFC_ overrides")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	addRenderFlags(cmd, opts)

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newParamsCmd(opts),
		newInteractiveCmd(opts),
	)
	return cmd
}

func addRenderFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.outputFormat, "output-format", "o", "", "type of output override: pretty, csv, summary, json")
	cmd.Flags().BoolVar(&opts.charts, "charts", false, "draw disbursement, profit and AUM charts with pretty output")
}

// loadConfiguration reads the dotenv file and the configuration. A missing
// config file falls back to the defaults unless it was named explicitly.
func loadConfiguration(cmd *cobra.Command, opts *options) (*config.Configuration, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}

	if _, err := os.Stat(opts.configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			return config.LoadDefaults()
		}
		return nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	conf, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}
	return conf, nil
}

// setup loads the configuration and builds the logger for a command.
func setup(cmd *cobra.Command, opts *options) (*config.Configuration, *zap.Logger, error) {
	conf, err := loadConfiguration(cmd, opts)
	if err != nil {
		return nil, nil, err
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return conf, logger, nil
}

func runProjection(cmd *cobra.Command, opts *options) error {
	conf, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	return render(cmd.OutOrStdout(), logger, conf, opts)
}

// render computes the forecast and writes it in the selected format. The
// flag takes precedence over the configured format.
func render(w io.Writer, logger *zap.Logger, conf *config.Configuration, opts *options) error {
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.render"),
		)
	}

	result, err := forecast.GetForecast(logger, *conf)
	if err != nil {
		logger.Error("failed to compute forecast",
			zap.String("op", "main.render"),
			zap.Error(err),
		)
		return err
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		return output.WriteCSV(w, result.Projection)
	case constants.OutputFormatSummary:
		return output.WriteSummary(w, result)
	case constants.OutputFormatJSON:
		return output.WriteJSON(w, result)
	default:
		return output.WritePretty(w, result, opts.charts || conf.Output.Charts)
	}
}
