// Package gaps identifies skill gaps between a resume and a job posting via
// a language model, then ranks and truncates the returned gap list.
package gaps

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// MaxGaps caps the gap list after ranking.
const MaxGaps = 5

// Temperature is the decoding temperature for gap analysis. Low, because
// this is a classification-like task.
const Temperature = 0.3

// Analyzer runs gap analysis against an LLM client.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by the given client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze compares resume text against a job posting and returns a ranked
// gap list of at most MaxGaps entries. No retries are performed; transient
// model failures surface to the caller for manual re-invocation.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription, jobTitle, company string) (*types.GapAnalysisResult, error) {
	system := prompts.MustGet("gaps.json", "analyze-system")
	user := prompts.Format(prompts.MustGet("gaps.json", "analyze-user"), map[string]string{
		"JobTitle":       jobTitle,
		"Company":        company,
		"JobDescription": jobDescription,
		"ResumeContent":  resumeText,
	})

	response, err := a.client.GenerateJSON(ctx, llm.Request{
		System:      system,
		Prompt:      user,
		Tier:        llm.TierStandard,
		Temperature: Temperature,
	})
	if err != nil {
		return nil, err
	}

	result, err := ParseResult(response)
	if err != nil {
		return nil, err
	}

	RankGaps(result)
	return result, nil
}

// ParseResult validates and unmarshals a raw model response into a
// GapAnalysisResult. The response is treated as untrusted input.
func ParseResult(response string) (*types.GapAnalysisResult, error) {
	payload := []byte(llm.CleanJSONBlock(response))

	if err := schemas.ValidateBytes(schemas.GapAnalysis, payload); err != nil {
		return nil, &llm.MalformedResponseError{
			Message: "gap analysis response failed schema validation",
			Raw:     response,
			Cause:   err,
		}
	}

	var result types.GapAnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, &llm.MalformedResponseError{
			Message: "failed to parse gap analysis response",
			Raw:     response,
			Cause:   err,
		}
	}

	for i := range result.Gaps {
		if result.Gaps[i].ID == "" {
			result.Gaps[i].ID = fmt.Sprintf("gap-%s", uuid.NewString())
		}
	}

	return &result, nil
}

// RankGaps sorts gaps by priority (high before medium before low, stable for
// equal priority) and truncates to MaxGaps. Duplicate skills at different
// priorities are not deduplicated; whichever sorts first survives truncation.
func RankGaps(result *types.GapAnalysisResult) {
	sort.SliceStable(result.Gaps, func(i, j int) bool {
		return result.Gaps[i].Priority.Rank() < result.Gaps[j].Priority.Rank()
	})
	if len(result.Gaps) > MaxGaps {
		result.Gaps = result.Gaps[:MaxGaps]
	}
}
