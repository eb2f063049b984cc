// Package main provides the entry point for the Design Solver CLI and API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/design-solver/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "design_solver",
	Short: "Design Solver LLM orchestration engine",
	Long:  "Design Solver turns a raw product idea into a set of design artifacts: user journeys, layouts, data models and an interactive prototype, produced by a staged pipeline of specialist LLM roles.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the production LLM client stack: Gemini wrapped in an
// LRU response cache and a bounded-retry decorator.
func newClient(ctx context.Context, apiKey string) (llm.Client, error) {
	gemini, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	cached, err := llm.NewCachedClient(gemini, llm.DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	return llm.NewRetryClient(cached, llm.DefaultRetryOptions()), nil
}

// apiKeyFromEnv resolves the Gemini API key, preferring the flag value.
func apiKeyFromEnv(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
}
