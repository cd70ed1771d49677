package main

import (
	"errors"

	"github.com/iwvelando/nbfc-projection/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInteractiveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Enter parameters in a terminal form, then print the projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}

	addRenderFlags(cmd, opts)
	return cmd
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	conf, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	params, err := tui.CollectParameters(conf.Parameters)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			logger.Info("parameter entry cancelled", zap.String("op", "main.runInteractive"))
			return nil
		}
		return err
	}
	conf.Parameters = params

	return render(cmd.OutOrStdout(), logger, conf, opts)
}
