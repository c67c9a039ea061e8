// Package patterns provides the immutable keyword and regular-expression library used by the
// resume extractors and the match scorer. The default library is embedded at compile time.
package patterns

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/jonathan/resume-screener/internal/schemas"
)

//go:embed library.json
var defaultLibrary []byte

// KeywordGroup is a named, ordered keyword list
type KeywordGroup struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// SeniorityTier maps job-description keywords to a required number of years
type SeniorityTier struct {
	Name          string   `json:"name"`
	Keywords      []string `json:"keywords"`
	RequiredYears int      `json:"required_years"`
}

// SectionPattern is a section name with its header expression
type SectionPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Library holds every pattern set. A Library is never mutated after Parse returns,
// so one value may be shared by any number of goroutines.
type Library struct {
	Version              string
	SkillCategories      []KeywordGroup
	SeniorityTiers       []SeniorityTier
	DefaultRequiredYears int
	EducationKeywords    []string
	RolePatterns         []*regexp.Regexp
	SectionPatterns      []SectionPattern
	CompanySuffixes      []string
	Email                *regexp.Regexp
	PhonePatterns        []*regexp.Regexp
	ExperiencePatterns   []*regexp.Regexp
}

// rawLibrary mirrors library.json
type rawLibrary struct {
	Version              string          `json:"version"`
	SkillCategories      []KeywordGroup  `json:"skill_categories"`
	SeniorityTiers       []SeniorityTier `json:"seniority_tiers"`
	DefaultRequiredYears int             `json:"default_required_years"`
	EducationKeywords    []string        `json:"education_keywords"`
	RolePatterns         []string        `json:"role_patterns"`
	SectionPatterns      []struct {
		Name    string `json:"name"`
		Pattern string `json:"pattern"`
	} `json:"section_patterns"`
	CompanySuffixes    []string `json:"company_suffixes"`
	EmailPattern       string   `json:"email_pattern"`
	PhonePatterns      []string `json:"phone_patterns"`
	ExperiencePatterns []string `json:"experience_patterns"`
}

// LoadError represents a failure to load or compile a pattern library
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pattern library %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("pattern library %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the embedded library. It is parsed once per process.
// The embedded data is covered by tests, so a failure here is a build defect and panics.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := parse("embedded", defaultLibrary)
		if err != nil {
			panic(err)
		}
		defaultLib = lib
	})
	return defaultLib
}

// LoadFile reads and compiles a library from a JSON file on disk.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "failed to read file", Cause: err}
	}
	return parse(path, data)
}

// Parse compiles a library from raw JSON.
func Parse(data []byte) (*Library, error) {
	return parse("(bytes)", data)
}

func parse(source string, data []byte) (*Library, error) {
	if err := schemas.Validate(schemas.PatternLibrary, data); err != nil {
		return nil, &LoadError{Source: source, Message: "does not match schema", Cause: err}
	}

	var raw rawLibrary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to parse JSON", Cause: err}
	}

	lib := &Library{
		Version:              raw.Version,
		SkillCategories:      raw.SkillCategories,
		SeniorityTiers:       raw.SeniorityTiers,
		DefaultRequiredYears: raw.DefaultRequiredYears,
		EducationKeywords:    raw.EducationKeywords,
		CompanySuffixes:      raw.CompanySuffixes,
	}

	var err error
	if lib.Email, err = compile(source, "email_pattern", raw.EmailPattern, false); err != nil {
		return nil, err
	}
	if lib.PhonePatterns, err = compileAll(source, "phone_patterns", raw.PhonePatterns, false); err != nil {
		return nil, err
	}
	if lib.ExperiencePatterns, err = compileAll(source, "experience_patterns", raw.ExperiencePatterns, false); err != nil {
		return nil, err
	}
	if lib.RolePatterns, err = compileAll(source, "role_patterns", raw.RolePatterns, true); err != nil {
		return nil, err
	}

	lib.SectionPatterns = make([]SectionPattern, 0, len(raw.SectionPatterns))
	for _, sp := range raw.SectionPatterns {
		re, err := compile(source, "section_patterns."+sp.Name, sp.Pattern, true)
		if err != nil {
			return nil, err
		}
		lib.SectionPatterns = append(lib.SectionPatterns, SectionPattern{Name: sp.Name, Pattern: re})
	}

	return lib, nil
}

func compileAll(source, field string, exprs []string, ignoreCase bool) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for i, expr := range exprs {
		re, err := compile(source, fmt.Sprintf("%s[%d]", field, i), expr, ignoreCase)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

func compile(source, field, expr string, ignoreCase bool) (*regexp.Regexp, error) {
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &LoadError{Source: source, Message: "invalid expression in " + field, Cause: err}
	}
	return re, nil
}

// RequiredYears infers the years of experience a job description asks for.
// Tiers are checked in order by substring against the lower-cased description.
func (l *Library) RequiredYears(jobDescriptionLower string) int {
	for _, tier := range l.SeniorityTiers {
		if containsAny(jobDescriptionLower, tier.Keywords) {
			return tier.RequiredYears
		}
	}
	return l.DefaultRequiredYears
}
