// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a job posting loaded from a URL or entered manually.
// Description falls back to RawText when structured extraction yields nothing.
type JobPosting struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	RawText          string   `json:"rawText"`
}

// EffectiveDescription returns the description, falling back to the raw page
// text when structured extraction produced nothing.
func (j *JobPosting) EffectiveDescription() string {
	if j.Description != "" {
		return j.Description
	}
	return j.RawText
}
