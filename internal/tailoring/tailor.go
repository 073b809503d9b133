// Package tailoring rewrites resume bullets to match a job posting via a
// language model, preserving factual content while rewording and reordering.
package tailoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Temperature is the decoding temperature for tailoring. Higher than gap
// analysis because rewriting is a generative task.
const Temperature = 0.7

// Engine runs resume tailoring against an LLM client.
type Engine struct {
	client llm.Client
}

// NewEngine creates an Engine backed by the given client.
func NewEngine(client llm.Client) *Engine {
	return &Engine{client: client}
}

// Tailor rewrites the resume for the given job posting, weaving in any gap
// answers the candidate provided. An empty answer list is valid and produces
// the same output shape. No retries are performed.
func (e *Engine) Tailor(ctx context.Context, resumeText, jobDescription, jobTitle, company string, answers []types.GapAnswer) (*types.TailoredData, error) {
	system := prompts.MustGet("tailoring.json", "tailor-system")
	user := prompts.Format(prompts.MustGet("tailoring.json", "tailor-user"), map[string]string{
		"JobTitle":       jobTitle,
		"Company":        company,
		"JobDescription": jobDescription,
		"ResumeContent":  resumeText,
		"GapContext":     BuildGapContext(answers),
	})

	response, err := e.client.GenerateJSON(ctx, llm.Request{
		System:      system,
		Prompt:      user,
		Tier:        llm.TierAdvanced,
		Temperature: Temperature,
	})
	if err != nil {
		return nil, err
	}

	return ParseResult(response)
}

// BuildGapContext renders the user-provided gap answers as a context block
// for the tailoring prompt. Returns an empty string when there are no
// answers, so the prompt shape stays identical either way.
func BuildGapContext(answers []types.GapAnswer) string {
	if len(answers) == 0 {
		return ""
	}

	var lines []string
	for _, a := range answers {
		if a.HasExperience && a.UserResponse != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", a.Skill, a.UserResponse))
		}
	}
	for _, a := range answers {
		if !a.HasExperience {
			lines = append(lines, fmt.Sprintf("- %s: Candidate does not have direct experience. Emphasize transferable skills.", a.Skill))
		}
	}

	if len(lines) == 0 {
		return ""
	}

	template := prompts.MustGet("tailoring.json", "gap-context")
	return prompts.Format(template, map[string]string{
		"AnswerLines": strings.Join(lines, "\n"),
	})
}

// ParseResult validates and unmarshals a raw model response into
// TailoredData. Bullet counts are not repaired: tailoredBullets may be longer
// than originalBullets and aiRecommendations may be absent.
func ParseResult(response string) (*types.TailoredData, error) {
	payload := []byte(llm.CleanJSONBlock(response))

	if err := schemas.ValidateBytes(schemas.TailoredResume, payload); err != nil {
		return nil, &llm.MalformedResponseError{
			Message: "tailoring response failed schema validation",
			Raw:     response,
			Cause:   err,
		}
	}

	var result types.TailoredData
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, &llm.MalformedResponseError{
			Message: "failed to parse tailoring response",
			Raw:     response,
			Cause:   err,
		}
	}

	return &result, nil
}
