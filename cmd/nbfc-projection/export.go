package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/nbfc-projection/internal/forecast"
	"github.com/iwvelando/nbfc-projection/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(opts *options) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the CSV projection and the text summary to files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts, dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write the export files into")
	return cmd
}

func runExport(cmd *cobra.Command, opts *options, dir string) error {
	conf, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	result, err := forecast.GetForecast(logger, *conf)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	csvPath := filepath.Join(dir, output.CSVFileName(result.Derived.TotalCapital))
	if err := os.WriteFile(csvPath, []byte(output.CsvString(result.Projection)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", csvPath, err)
	}

	summaryPath := filepath.Join(dir, output.SummaryFileName(result.Derived.TotalCapital))
	if err := os.WriteFile(summaryPath, []byte(output.SummaryText(result)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", summaryPath, err)
	}

	logger.Info("export written",
		zap.String("op", "main.runExport"),
		zap.String("csv", csvPath),
		zap.String("summary", summaryPath),
	)
	fmt.Fprintln(cmd.OutOrStdout(), csvPath)
	fmt.Fprintln(cmd.OutOrStdout(), summaryPath)
	return nil
}
