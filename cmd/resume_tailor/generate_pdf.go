package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/render"
	"github.com/jonathan/resume-tailor/internal/types"
)

var generatePDFCmd = &cobra.Command{
	Use:   "generate-pdf",
	Short: "Render tailored sections to a PDF",
	Long:  "Render a tailored resume JSON file (as produced by the tailor command) to a PDF document. Requires Chrome/Chromium to be installed.",
	RunE:  runGeneratePDF,
}

var (
	generatePDFInput  string
	generatePDFOutput string
)

func init() {
	generatePDFCmd.Flags().StringVarP(&generatePDFInput, "in", "i", "", "Path to tailored resume JSON file")
	generatePDFCmd.Flags().StringVarP(&generatePDFOutput, "out", "o", "tailored-resume.pdf", "Path to output PDF file")
	_ = generatePDFCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(generatePDFCmd)
}

// loadSections accepts either a full tailored result or a bare section array.
func loadSections(data []byte) ([]types.Section, error) {
	var tailored types.TailoredData
	if err := json.Unmarshal(data, &tailored); err == nil && tailored.Sections != nil {
		return tailored.Sections, nil
	}

	var sections []types.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: expected a tailored result or a section array: %w", err)
	}
	return sections, nil
}

func runGeneratePDF(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(generatePDFInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	sections, err := loadSections(data)
	if err != nil {
		return err
	}

	pdf, err := render.PDF(context.Background(), sections, render.DefaultTimeout)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := os.WriteFile(generatePDFOutput, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	fmt.Printf("PDF written to %s\n", generatePDFOutput)
	return nil
}
