package types

import "fmt"

// Priority represents the urgency of a gap question.
type Priority string

// Priority levels, ordered high > medium > low.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority (lower sorts first).
// Unknown values rank after low so malformed model output sinks to the end.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// GapQuestion represents a single skill gap identified by the analyzer,
// phrased as a yes/no question for the candidate.
type GapQuestion struct {
	ID       string   `json:"id"`
	Skill    string   `json:"skill"`
	Context  string   `json:"context"`
	Question string   `json:"question"`
	Priority Priority `json:"priority"`
}

// GapAnalysisResult represents the full output of one gap analysis run.
type GapAnalysisResult struct {
	Gaps            []GapQuestion `json:"gaps"`
	MatchedSkills   []string      `json:"matchedSkills"`
	JobRequirements []string      `json:"jobRequirements"`
}

// GapAnswer represents the candidate's answer to one gap question.
// UserResponse is set only when HasExperience is true; CompensationStrategy
// is set only when HasExperience is false.
type GapAnswer struct {
	QuestionID           string `json:"questionId"`
	Skill                string `json:"skill"`
	HasExperience        bool   `json:"hasExperience"`
	UserResponse         string `json:"userResponse,omitempty"`
	CompensationStrategy string `json:"compensationStrategy,omitempty"`
}

// CompensationStrategy builds the fixed fallback note attached to a "no
// experience" answer for the given skill.
func CompensationStrategy(skill string) string {
	return fmt.Sprintf("Emphasize transferable skills related to %s", skill)
}

// Valid reports whether the answer satisfies the answer invariant:
// HasExperience implies a non-empty UserResponse and no CompensationStrategy,
// and vice versa.
func (a *GapAnswer) Valid() bool {
	if a.HasExperience {
		return a.UserResponse != "" && a.CompensationStrategy == ""
	}
	return a.UserResponse == "" && a.CompensationStrategy != ""
}
