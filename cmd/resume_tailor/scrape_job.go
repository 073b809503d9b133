package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/scrape"
)

var scrapeJobCmd = &cobra.Command{
	Use:   "scrape-job",
	Short: "Fetch and extract a job posting from a URL",
	Long:  "Fetch a job posting URL, extract title, company, description, requirements, and responsibilities, and print the result as JSON.",
	RunE:  runScrapeJob,
}

var (
	scrapeJobURL        string
	scrapeJobOutput     string
	scrapeJobUseBrowser bool
	scrapeJobVerbose    bool
)

func init() {
	scrapeJobCmd.Flags().StringVarP(&scrapeJobURL, "url", "u", "", "Job posting URL")
	scrapeJobCmd.Flags().StringVarP(&scrapeJobOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	scrapeJobCmd.Flags().BoolVar(&scrapeJobUseBrowser, "use-browser", false, "Use headless browser fallback for SPA job boards")
	scrapeJobCmd.Flags().BoolVarP(&scrapeJobVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = scrapeJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(scrapeJobCmd)
}

func runScrapeJob(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	job, err := scrape.Job(ctx, scrapeJobURL, &scrape.Options{UseBrowser: scrapeJobUseBrowser})
	if err != nil {
		return fmt.Errorf("failed to scrape job posting: %w", err)
	}

	if scrapeJobVerbose {
		observability.NewPrinter(os.Stderr).PrintJobPosting(job)
	}

	jsonBytes, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if scrapeJobOutput == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(scrapeJobOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Job posting written to %s\n", scrapeJobOutput)
	return nil
}
