package types

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// ScrapeJobRequest represents the request to fetch and extract a job posting.
type ScrapeJobRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// AnalyzeGapsRequest represents the request to run gap analysis.
type AnalyzeGapsRequest struct {
	ResumeContent  string `json:"resumeContent" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
}

// TailorResumeRequest represents the request to tailor a resume.
type TailorResumeRequest struct {
	ResumeContent  string      `json:"resumeContent" validate:"required"`
	JobDescription string      `json:"jobDescription" validate:"required"`
	JobTitle       string      `json:"jobTitle"`
	Company        string      `json:"company"`
	GapAnswers     []GapAnswer `json:"gapAnswers"`
}

// GeneratePDFRequest represents the request to render tailored sections as a
// downloadable document. Sections stays raw so a missing field, a null, and
// an empty array remain distinguishable after decoding.
type GeneratePDFRequest struct {
	Sections json.RawMessage `json:"sections"`
}

// SectionList decodes the sections payload. A missing field and anything
// other than a JSON array are rejected; an empty array is valid and renders
// a header-only document.
func (r *GeneratePDFRequest) SectionList() ([]Section, error) {
	if len(r.Sections) == 0 {
		return nil, errors.New("sections is required")
	}
	var sections []Section
	if err := json.Unmarshal(r.Sections, &sections); err != nil || sections == nil {
		return nil, errors.New("sections must be an array")
	}
	return sections, nil
}

// ParseResumeResponse represents the response for a parsed resume upload.
type ParseResumeResponse struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
}

// Validate validates the ScrapeJobRequest using the validator.
func (r *ScrapeJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeGapsRequest using the validator.
func (r *AnalyzeGapsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TailorResumeRequest using the validator.
func (r *TailorResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
