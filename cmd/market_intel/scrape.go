package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/market-intel/internal/observability"
	"github.com/jonathan/market-intel/internal/pipeline"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a job posting URL into structured JSON",
	Long:  "Scrape a job posting URL, extract its fields with board-specific selectors, and parse them into structured JSON. Without a GEMINI_API_KEY the deterministic extractor alone fills the fields.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScrape,
}

var (
	scrapeOutputFile string
	scrapeUseBrowser bool
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scrapeCmd.Flags().BoolVar(&scrapeUseBrowser, "browser", false, "Allow local headless-browser rendering as a fetch tier")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if scrapeUseBrowser {
		cfg.UseBrowser = true
	}

	ctx := cmd.Context()

	p, err := pipeline.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Close()

	result, err := p.ScrapeJob(ctx, args[0])
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintParsedJob(result.Parsed)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if scrapeOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(scrapeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scrapeOutputFile)

	return nil
}
