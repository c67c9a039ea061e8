// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ParseRequest represents the request to parse a resume.
type ParseRequest struct {
	ResumeText string `json:"resume_text" validate:"max=200000"`
}

// ScoreRequest represents the request to score a resume against a job.
type ScoreRequest struct {
	ResumeText      string   `json:"resume_text" validate:"max=200000"`
	JobDescription  string   `json:"job_description" validate:"max=200000"`
	JobRequirements []string `json:"job_requirements" validate:"max=100,dive,max=200"`
}

// GenerateQuestionsRequest represents the request to generate interview questions.
type GenerateQuestionsRequest struct {
	CandidateProfile map[string]any `json:"candidate_profile" validate:"required"`
	JobDescription   string         `json:"job_description" validate:"max=200000"`
	FocusAreas       []string       `json:"focus_areas,omitempty" validate:"omitempty,max=20,dive,max=200"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateQuestionsRequest using the validator.
func (r *GenerateQuestionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
