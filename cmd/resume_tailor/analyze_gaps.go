package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/gaps"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/types"
)

var analyzeGapsCmd = &cobra.Command{
	Use:   "analyze-gaps",
	Short: "Identify skill gaps between a resume and a job posting",
	Long:  "Run gap analysis: extract job requirements, match them against the resume, and print up to five prioritized gap questions as JSON.",
	RunE:  runAnalyzeGaps,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJobTitle   string
	analyzeCompany    string
	analyzeAPIKey     string
	analyzeOutput     string
	analyzeVerbose    bool
)

func init() {
	analyzeGapsCmd.Flags().StringVar(&analyzeResumeFile, "resume", "", "Path to resume text file")
	analyzeGapsCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job description text file")
	analyzeGapsCmd.Flags().StringVar(&analyzeJobTitle, "title", "", "Job title")
	analyzeGapsCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeGapsCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeGapsCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeGapsCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = analyzeGapsCmd.MarkFlagRequired("resume")
	_ = analyzeGapsCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeGapsCmd)
}

// requireAPIKey resolves the model credential from flag or environment.
func requireAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}

// loadJobContext reads a job file that is either plain description text or
// scrape-job JSON output. For a posting, the description falls back to the
// raw page text, and the posting's title and company fill in any the caller
// left unset.
func loadJobContext(path, title, company string) (jobText, jobTitle, companyName string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to read job file: %w", err)
	}

	var posting types.JobPosting
	if jsonErr := json.Unmarshal(data, &posting); jsonErr != nil {
		return string(data), title, company, nil
	}

	if title == "" {
		title = posting.Title
	}
	if company == "" {
		company = posting.Company
	}
	return posting.EffectiveDescription(), title, company, nil
}

func runAnalyzeGaps(_ *cobra.Command, _ []string) error {
	apiKey, err := requireAPIKey(analyzeAPIKey)
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(analyzeResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, jobTitle, company, err := loadJobContext(analyzeJobFile, analyzeJobTitle, analyzeCompany)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result, err := gaps.NewAnalyzer(client).Analyze(ctx, string(resumeText), jobText, jobTitle, company)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintGapAnalysis(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutput == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(analyzeOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Gap analysis written to %s\n", analyzeOutput)
	return nil
}
