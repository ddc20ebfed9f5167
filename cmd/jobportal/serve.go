package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RAJVEER42/ai-job-portal/internal/config"
	"github.com/RAJVEER42/ai-job-portal/internal/engine"
	"github.com/RAJVEER42/ai-job-portal/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes job recommendations and skill-gap analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = *loaded
		if cfg.Port == 0 {
			cfg.Port = config.Default().Port
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		Engine: engine.Options{
			Vocabulary:     cfg.Vocabulary,
			FallbackSkills: cfg.FallbackSkills,
			Concurrency:    cfg.Concurrency,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
