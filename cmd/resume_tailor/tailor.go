package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/gaps"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/render"
	"github.com/jonathan/resume-tailor/internal/resolution"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Rewrite resume bullets against a job posting",
	Long: `Tailor a resume to a job posting. With --interactive, gap analysis runs first
and each identified gap is asked as a question; the collected answers are woven
into the rewritten bullets. With --answers, a prepared answer file is used instead.`,
	RunE: runTailor,
}

var (
	tailorResumeFile  string
	tailorJobFile     string
	tailorJobTitle    string
	tailorCompany     string
	tailorAPIKey      string
	tailorAnswersFile string
	tailorInteractive bool
	tailorOutput      string
	tailorPDFOutput   string
	tailorVerbose     bool
)

func init() {
	tailorCmd.Flags().StringVar(&tailorResumeFile, "resume", "", "Path to resume text file")
	tailorCmd.Flags().StringVar(&tailorJobFile, "job", "", "Path to job description text file")
	tailorCmd.Flags().StringVar(&tailorJobTitle, "title", "", "Job title")
	tailorCmd.Flags().StringVar(&tailorCompany, "company", "", "Company name")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	tailorCmd.Flags().StringVar(&tailorAnswersFile, "answers", "", "Path to a JSON file of gap answers")
	tailorCmd.Flags().BoolVar(&tailorInteractive, "interactive", false, "Run gap analysis and answer gap questions on the terminal")
	tailorCmd.Flags().StringVarP(&tailorOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	tailorCmd.Flags().StringVar(&tailorPDFOutput, "pdf", "", "Also render the tailored sections to this PDF path")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = tailorCmd.MarkFlagRequired("resume")
	_ = tailorCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(tailorCmd)
}

// collectAnswers walks the gap questions on the terminal. EOF and explicit
// skip both end questioning with no answers.
func collectAnswers(result *types.GapAnalysisResult, in io.Reader, out io.Writer) ([]types.GapAnswer, error) {
	flow := resolution.New()
	if err := flow.Begin(result); err != nil {
		return nil, err
	}

	if flow.State() == resolution.StateNoGaps {
		fmt.Fprintln(out, "No gaps identified. Continuing to tailoring.")
		if err := flow.Continue(); err != nil {
			return nil, err
		}
		return flow.Answers()
	}

	scanner := bufio.NewScanner(in)
questions:
	for flow.State() == resolution.StateQuestions {
		question, ok := flow.Question()
		if !ok {
			break
		}
		answered, total := flow.Progress()
		fmt.Fprintf(out, "\n[%d/%d] %s\n%s\n", answered+1, total, question.Skill, question.Question)
		fmt.Fprint(out, "Do you have this experience? [y/n, s to skip remaining]: ")

		if !scanner.Scan() {
			_ = flow.Skip()
			break
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			_ = flow.Choose(true)
			fmt.Fprint(out, "Describe your experience (empty line to go back): ")
			if !scanner.Scan() {
				_ = flow.Skip()
				break questions
			}
			response := strings.TrimSpace(scanner.Text())
			if response == "" {
				_ = flow.Revert()
				continue
			}
			_ = flow.SetResponse(response)
			if err := flow.Submit(); err != nil {
				return nil, err
			}
		case "n", "no":
			_ = flow.Choose(false)
			if err := flow.Submit(); err != nil {
				return nil, err
			}
		case "s", "skip":
			_ = flow.Skip()
		default:
			fmt.Fprintln(out, "Please answer y, n, or s.")
		}
	}

	return flow.Answers()
}

func loadAnswersFile(path string) ([]types.GapAnswer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	var answers []types.GapAnswer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers JSON: %w", err)
	}
	for i := range answers {
		if !answers[i].Valid() {
			return nil, fmt.Errorf("answer %d is inconsistent: a description is required exactly when experience is claimed", i)
		}
	}
	return answers, nil
}

func runTailor(_ *cobra.Command, _ []string) error {
	if tailorInteractive && tailorAnswersFile != "" {
		return fmt.Errorf("cannot use --interactive with --answers")
	}

	apiKey, err := requireAPIKey(tailorAPIKey)
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(tailorResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, jobTitle, company, err := loadJobContext(tailorJobFile, tailorJobTitle, tailorCompany)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var answers []types.GapAnswer
	switch {
	case tailorAnswersFile != "":
		answers, err = loadAnswersFile(tailorAnswersFile)
		if err != nil {
			return err
		}
	case tailorInteractive:
		result, err := gaps.NewAnalyzer(client).Analyze(ctx, string(resumeText), jobText, jobTitle, company)
		if err != nil {
			return fmt.Errorf("gap analysis failed: %w", err)
		}
		answers, err = collectAnswers(result, os.Stdin, os.Stderr)
		if err != nil {
			return err
		}
	}

	data, err := tailoring.NewEngine(client).Tailor(ctx, string(resumeText), jobText, jobTitle, company, answers)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	if tailorVerbose {
		observability.NewPrinter(os.Stderr).PrintTailoredSummary(data)
	}

	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if tailorOutput == "" {
		fmt.Println(string(jsonBytes))
	} else {
		if err := os.WriteFile(tailorOutput, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Tailored resume written to %s\n", tailorOutput)
	}

	if tailorPDFOutput != "" {
		pdf, err := render.PDF(ctx, data.Sections, render.DefaultTimeout)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		if err := os.WriteFile(tailorPDFOutput, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF file: %w", err)
		}
		fmt.Printf("PDF written to %s\n", tailorPDFOutput)
	}

	return nil
}
