// Package main provides the entry point for the Career Compass CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Compass skill matching and roadmap planner",
	Long:  "Career Compass matches skill profiles against a career catalog, analyzes skill gaps, and plans phased learning roadmaps, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
