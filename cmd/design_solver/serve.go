package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/design-solver/internal/pipeline"
	"github.com/jonathan/design-solver/internal/server"
)

var (
	servePort   int
	serveAPIKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running the design pipeline, including an SSE endpoint streaming live progress.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	apiKey, err := apiKeyFromEnv(serveAPIKey)
	if err != nil {
		return err
	}

	client, err := newClient(context.Background(), apiKey)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	srv := server.New(server.Config{Port: servePort}, pipeline.New(client))
	return srv.Start()
}
