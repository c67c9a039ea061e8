// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field caps for an ExtractedProfile. They are hard upper bounds.
const (
	MaxSkills    = 20
	MaxEducation = 5
	MaxRoles     = 10
	MaxCompanies = 5
)

// ExtractedProfile represents the candidate fields extracted heuristically from resume text
type ExtractedProfile struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years"`
	Education       []string `json:"education"`
	Roles           []string `json:"roles"`
	Companies       []string `json:"companies"`
}

// Section names recognized by the segmenter
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionSummary    = "summary"
)

// SectionMap maps a section name to its newline-joined raw content
type SectionMap map[string]string

// ParseResult is the output of a resume parse call
type ParseResult struct {
	Profile        ExtractedProfile `json:"profile"`
	RawSections    SectionMap       `json:"raw_sections"`
	ProcessingTime float64          `json:"processing_time"` // seconds
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
