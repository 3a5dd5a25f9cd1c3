package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes the analysis, prediction and roadmap endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
