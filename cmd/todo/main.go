package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tada/internal/api"
	"tada/internal/config"
	"tada/internal/logging"
	"tada/internal/storage"
	"tada/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		apiURL     string
	)
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Terminal to-do list backed by a REST endpoint",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, apiURL)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.ResolveConfigPath(), "path to config.toml")
	cmd.Flags().StringVar(&apiURL, "api", "", "task collection URL (overrides api_url)")
	return cmd
}

func run(configPath, apiURL string) error {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	logger, err := logging.Open(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel, Prefix: "tada"})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logger.Close()

	store, err := storage.Open(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer store.Close()

	logger.Info("starting", "api", cfg.APIURL, "config", configPath)
	client := api.New(cfg.APIURL, cfg.Timeout(), logger.Logger)

	if err := ui.Run(cfg, ui.Options{
		Backend: client,
		Store:   store,
		Logger:  logger.Logger,
	}); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
