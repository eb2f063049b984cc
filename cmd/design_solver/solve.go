package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/design-solver/internal/observability"
	"github.com/jonathan/design-solver/internal/pipeline"
	"github.com/jonathan/design-solver/internal/types"
)

var solveCmd = &cobra.Command{
	Use:   "solve [idea]",
	Short: "Run the full design pipeline for a product idea",
	Long: `Runs the staged pipeline end-to-end: intent analysis -> application cartography -> parallel expert phases -> synthesis -> consistency check.

The idea can be passed as a positional argument or via --idea. Results print as JSON unless --verbose formats them for reading.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

var (
	solveIdea    string
	solveMode    string
	solveDepth   string
	solveAPIKey  string
	solveOutput  string
	solveVerbose bool
)

func init() {
	solveCmd.Flags().StringVarP(&solveIdea, "idea", "i", "", "Product idea to solve for (alternative to positional argument)")
	solveCmd.Flags().StringVarP(&solveMode, "mode", "m", "idea", "Project mode: idea, mvp or scale")
	solveCmd.Flags().StringVarP(&solveDepth, "depth", "d", "standard", "Strategy depth: quick, standard or deep")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Write the result JSON to a file instead of stdout")
	solveCmd.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "Print formatted progress and artifact summaries")
	solveCmd.Flags().StringVar(&solveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	raw := solveIdea
	if len(args) > 0 {
		raw = args[0]
	}
	if raw == "" {
		return fmt.Errorf("a product idea is required (positional argument or --idea)")
	}

	mode, err := types.ParseMode(solveMode)
	if err != nil {
		return err
	}
	depth, err := types.ParseDepth(solveDepth)
	if err != nil {
		return err
	}

	apiKey, err := apiKeyFromEnv(solveAPIKey)
	if err != nil {
		return err
	}

	client, err := newClient(ctx, apiKey)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	var emit pipeline.UpdateFunc
	if solveVerbose {
		emit = func(snap pipeline.Snapshot) {
			fmt.Fprintf(os.Stderr, "[%s] %s (%d artifacts)\n", snap.Status, snap.Step, len(snap.Artifacts))
		}
	}

	orchestrator := pipeline.New(client)
	result, err := orchestrator.Run(ctx, types.Idea{Raw: raw, Mode: mode, Depth: depth}, emit)
	if err != nil {
		return err
	}

	if solveVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintIntent(result.Intent)
		printer.PrintAppMap(result.AppMap)
		printer.PrintArtifacts(result.Artifacts)
		printer.PrintReport(result.Report)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if solveOutput != "" {
		if err := os.WriteFile(solveOutput, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Result written to %s\n", solveOutput)
		return nil
	}

	fmt.Println(string(encoded))
	return nil
}
