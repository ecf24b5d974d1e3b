package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclezen/internal/api"
	"github.com/terraincognita07/cyclezen/internal/cli"
	"github.com/terraincognita07/cyclezen/internal/config"
	"github.com/terraincognita07/cyclezen/internal/logging"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	options := &rootOptions{}

	root := &cobra.Command{
		Use:           "cyclezen",
		Short:         "CycleZen - private menstrual cycle and symptom tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return options.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if options.logger != nil {
				_ = logging.Sync(options.logger)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), options)
		},
	}
	root.PersistentFlags().StringVarP(&options.configPath, "config", "c", "", "YAML config file")

	root.AddCommand(
		newServeCommand(options),
		newExportCommand(options),
		newClearDataCommand(options),
		newInsightsCommand(options),
	)
	return root
}

func (options *rootOptions) load() error {
	cfg, err := config.Load(options.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	options.cfg = cfg
	options.logger = logger
	return nil
}

func newServeCommand(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), options)
		},
	}
}

func newExportCommand(options *rootOptions) *cobra.Command {
	var outputPath string
	command := &cobra.Command{
		Use:   "export",
		Short: "Write every cycle and symptom log as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := cli.OpenRecordStore(options.cfg, options.logger, nil)
			defer func() { _ = closeStore() }()
			if err != nil {
				return err
			}

			if outputPath == "" {
				return cli.RunExportCommand(store, cmd.OutOrStdout())
			}
			file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("open export file: %w", err)
			}
			if err := cli.RunExportCommand(store, file); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}
			options.logger.Info("export written", zap.String("path", outputPath))
			return nil
		},
	}
	command.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	return command
}

func newClearDataCommand(options *rootOptions) *cobra.Command {
	var confirmed bool
	command := &cobra.Command{
		Use:   "clear-data",
		Short: "Delete every record and start over with a fresh profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := cli.OpenRecordStore(options.cfg, options.logger, nil)
			defer func() { _ = closeStore() }()
			if err != nil {
				return err
			}
			return cli.RunClearDataCommand(store, cli.ClearDataOptions{
				Confirmed:   confirmed,
				Interactive: cli.StdinIsTerminal(),
				Input:       cmd.InOrStdin(),
				Output:      cmd.OutOrStdout(),
			})
		},
	}
	command.Flags().BoolVarP(&confirmed, "yes", "y", false, "skip the confirmation prompt")
	return command
}

func newInsightsCommand(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Print symptom insights as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := cli.OpenRecordStore(options.cfg, options.logger, nil)
			defer func() { _ = closeStore() }()
			if err != nil {
				return err
			}
			return cli.RunInsightsCommand(store, cmd.OutOrStdout())
		},
	}
}

func runServe(parent context.Context, options *rootOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := options.cfg
	logger := options.logger

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store, closeStore, err := cli.OpenRecordStore(cfg, logger, registry)
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()
	if err != nil {
		return err
	}

	location := cfg.Location()
	handler := api.NewHandler(store, logger, location)
	app := api.NewApp(handler, api.AppConfig{
		Logger:     logger,
		Registerer: registry,
		Gatherer:   registry,
	})

	sigCtx, stopSignals := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("cyclezen listening",
		zap.String("addr", cfg.ListenAddress()),
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(cfg.ListenAddress()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	logger.Info("cyclezen stopped")
	return nil
}
