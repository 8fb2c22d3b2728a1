package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for scoring, planning,
and running the optimizer, with runs persisted to PostgreSQL.

Requires DATABASE_URL plus AUTH_USERNAME/AUTH_PASSWORD_HASH and JWT_SECRET for
operator authentication. Without GEMINI_API_KEY the server runs in TF-IDF
scoring mode and /optimize is unavailable.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set; scoring uses TF-IDF only and /optimize is unavailable")
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		APIKey:      apiKey,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
