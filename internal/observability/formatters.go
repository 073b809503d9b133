// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of a scraped job posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString("\n")

	if len(job.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Requirements[i]))
		}
		if len(job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.Responsibilities) > 0 {
		sb.WriteString("Responsibilities:\n")
		count := min(len(job.Responsibilities), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Responsibilities[i]))
		}
		if len(job.Responsibilities) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Responsibilities)-3))
		}
	}

	p.printBox("SCRAPED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs the identified gaps with priorities and the
// skills already evidenced in the resume.
func (p *Printer) PrintGapAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Gaps found: %d\n\n", len(result.Gaps)))

	for i, gap := range result.Gaps {
		sb.WriteString(fmt.Sprintf("#%d  %s [%s]\n", i+1, gap.Skill, gap.Priority))
		question := gap.Question
		if len(question) > 45 {
			question = question[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", question))
		if i < len(result.Gaps)-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.MatchedSkills) > 0 {
		skills := strings.Join(result.MatchedSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMatched: %s", skills))
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredSummary outputs per-section bullet counts and the key
// matches for a tailoring run.
func (p *Printer) PrintTailoredSummary(data *types.TailoredData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sections tailored: %d\n\n", len(data.Sections)))

	count := min(len(data.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := data.Sections[i]
		sb.WriteString(fmt.Sprintf("%s: %d bullets\n", section.Title, len(section.TailoredBullets)))
	}
	if len(data.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more sections\n", len(data.Sections)-maxItemsToShow))
	}

	if len(data.KeyMatches) > 0 {
		matches := strings.Join(data.KeyMatches, ", ")
		if len(matches) > 45 {
			matches = matches[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nKey matches: %s", matches))
	}

	p.printBox("TAILORED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}
