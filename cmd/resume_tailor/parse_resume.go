package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/extract"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract plain text from a resume file",
	Long:  "Extract plain text from a PDF, DOCX, or LaTeX resume file and print it to stdout or write it to a file.",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeOutput string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume file (.pdf, .docx, .tex)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output text file (default stdout)")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := extract.Resume(data, filepath.Base(parseResumeInput), "")
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	if parseResumeOutput == "" {
		fmt.Println(text)
		return nil
	}

	if err := os.WriteFile(parseResumeOutput, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Extracted text written to %s\n", parseResumeOutput)
	return nil
}
