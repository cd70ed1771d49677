package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/iwvelando/nbfc-projection/pkg/validation"
	"github.com/spf13/cobra"
)

type paramsOptions struct {
	format   string
	output   string
	defaults bool
}

func newParamsCmd(opts *options) *cobra.Command {
	paramsOpts := &paramsOptions{}

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Write the effective configuration as a YAML or TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParams(cmd, opts, paramsOpts)
		},
	}

	cmd.Flags().StringVarP(&paramsOpts.format, "format", "f", constants.ParamsFormatYAML, "file format: yaml or toml")
	cmd.Flags().StringVar(&paramsOpts.output, "output", "", "file to write (default stdout)")
	cmd.Flags().BoolVar(&paramsOpts.defaults, "defaults", false, "write the built-in defaults instead of the loaded configuration")
	return cmd
}

func runParams(cmd *cobra.Command, opts *options, paramsOpts *paramsOptions) error {
	if err := validation.ValidateParamsFormat(paramsOpts.format); err != nil {
		return err
	}

	conf := config.DefaultConfiguration()
	if !paramsOpts.defaults {
		loaded, err := loadConfiguration(cmd, opts)
		if err != nil {
			return err
		}
		conf = *loaded
	}

	if err := conf.Parameters.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if paramsOpts.output != "" {
		file, err := os.Create(paramsOpts.output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", paramsOpts.output, err)
		}
		defer func() {
			_ = file.Close()
		}()
		w = file
	}

	return config.WriteConfiguration(w, conf, paramsOpts.format)
}
