package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/market-intel/internal/observability"
	"github.com/jonathan/market-intel/internal/pipeline"
	"github.com/jonathan/market-intel/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a role query into insight cards",
	Long:  "Analyze a role query (JSON file or flags) into the full card set: salary, skills, market, talent map, funnel, role, and reality cards. Market data requires ACTOR_API_TOKEN and an actor ID; without them the cards report placeholders.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeTitle      string
	analyzeLocation   string
	analyzeWorkModel  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to role query JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title (alternative to --in)")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "Location (used with --title)")
	analyzeCmd.Flags().StringVar(&analyzeWorkModel, "work-model", "", "Work model: remote, hybrid, or onsite")

	rootCmd.AddCommand(analyzeCmd)
}

func loadRoleQuery() (*types.RoleQuery, error) {
	if analyzeInputFile != "" && analyzeTitle != "" {
		return nil, fmt.Errorf("cannot use --in with --title")
	}

	if analyzeInputFile != "" {
		data, err := os.ReadFile(analyzeInputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		var role types.RoleQuery
		if err := json.Unmarshal(data, &role); err != nil {
			return nil, fmt.Errorf("failed to parse role query JSON: %w", err)
		}
		return &role, nil
	}

	if analyzeTitle == "" {
		return nil, fmt.Errorf("must provide either --in or --title")
	}
	return &types.RoleQuery{
		JobTitle:  analyzeTitle,
		Location:  analyzeLocation,
		WorkModel: analyzeWorkModel,
	}, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	role, err := loadRoleQuery()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	p, err := pipeline.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Close()

	cards, err := p.AnalyzeRole(ctx, role)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCardSet(cards)
		printer.PrintInsights(cards)
	}

	jsonBytes, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)

	return nil
}
