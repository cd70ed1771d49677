package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/nbfc-projection/internal/config"
	"github.com/iwvelando/nbfc-projection/internal/server"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	serverConfig  string
	address       string
	maxUploadSize string
}

func newServeCmd(opts *options) *cobra.Command {
	serveOpts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts, serveOpts)
		},
	}

	cmd.Flags().StringVar(&serveOpts.serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&serveOpts.address, "address", "", "listen address override (e.g. :8080)")
	cmd.Flags().StringVar(&serveOpts.maxUploadSize, "max-upload-size", "", "upload size limit override (e.g. 256K, 1M)")
	return cmd
}

// loadServerConfig reads the server file and applies flag overrides.
func loadServerConfig(serveOpts *serveOptions) (*server.Config, error) {
	cfg, err := server.LoadConfig(serveOpts.serverConfig)
	if err != nil {
		return nil, err
	}
	if serveOpts.address != "" {
		cfg.Address = serveOpts.address
	}
	if serveOpts.maxUploadSize != "" {
		size, err := server.ParseSize(serveOpts.maxUploadSize)
		if err != nil {
			return nil, err
		}
		cfg.SetUploadSizeBytes(size)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, opts *options, serveOpts *serveOptions) error {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return err
	}

	cfg, err := loadServerConfig(serveOpts)
	if err != nil {
		return err
	}

	logger, err := initializeLogger(cfg.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, logger, cfg, version); err != nil {
		logger.Error("server stopped with error",
			zap.String("op", "main.runServe"),
			zap.Error(err),
		)
		return err
	}
	return nil
}
