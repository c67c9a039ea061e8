// Package parsing provides heuristic extraction of candidate profiles and named sections
// from free-text resumes. Extraction never fails: every field degrades to absent or empty.
package parsing

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/resume-screener/internal/patterns"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	nameScanLines = 3
	nameMaxTokens = 4
)

// Extractor turns resume text into an ExtractedProfile.
// It holds only the read-only library and is safe for concurrent use.
type Extractor struct {
	lib *patterns.Library
}

// NewExtractor creates an extractor over the given library.
func NewExtractor(lib *patterns.Library) *Extractor {
	return &Extractor{lib: lib}
}

// Extract builds a profile from raw resume text
func (e *Extractor) Extract(text string) types.ExtractedProfile {
	lower := strings.ToLower(text)
	lines := splitLines(text)

	return types.ExtractedProfile{
		Name:            extractName(lines),
		Email:           e.extractEmail(text),
		Phone:           e.extractPhone(text),
		Skills:          e.extractSkills(lower),
		ExperienceYears: e.extractExperienceYears(lower),
		Education:       e.extractEducation(lines),
		Roles:           e.extractRoles(text),
		Companies:       e.extractCompanies(lines),
	}
}

// extractName picks the first of the leading non-empty lines that looks like a name.
func extractName(lines []string) *string {
	scanned := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if hasLetter(line) && len(strings.Fields(line)) <= nameMaxTokens {
			return types.StringPtr(line)
		}
		scanned++
		if scanned == nameScanLines {
			break
		}
	}
	return nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func (e *Extractor) extractEmail(text string) *string {
	if m := e.lib.Email.FindString(text); m != "" {
		return types.StringPtr(m)
	}
	return nil
}

// extractPhone returns the first match of the first pattern that matches; pattern order matters.
func (e *Extractor) extractPhone(text string) *string {
	for _, re := range e.lib.PhonePatterns {
		if loc := re.FindStringIndex(text); loc != nil {
			return types.StringPtr(text[loc[0]:loc[1]])
		}
	}
	return nil
}

func (e *Extractor) extractSkills(lower string) []string {
	found := make([]string, 0)
	for _, category := range e.lib.SkillCategories {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				found = append(found, TitleCase(keyword))
			}
		}
	}
	return capAt(dedupeFold(found), types.MaxSkills)
}

// extractExperienceYears returns the digits captured by the first pattern that matches.
// A capture too large for an int reads as absent.
func (e *Extractor) extractExperienceYears(lower string) *int {
	for _, re := range e.lib.ExperiencePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil || len(m) < 2 {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return types.IntPtr(years)
	}
	return nil
}

func (e *Extractor) extractEducation(lines []string) []string {
	education := make([]string, 0)
	for _, line := range lines {
		if e.lib.HasEducationKeyword(strings.ToLower(line)) {
			education = append(education, strings.TrimSpace(line))
			if len(education) == types.MaxEducation {
				break
			}
		}
	}
	return education
}

// extractRoles collects title matches pattern by pattern, in text order within each pattern.
// Duplicates keep their first-seen position so the output is deterministic.
func (e *Extractor) extractRoles(text string) []string {
	roles := make([]string, 0)
	for _, re := range e.lib.RolePatterns {
		for _, m := range re.FindAllString(text, -1) {
			roles = append(roles, TitleCase(m))
		}
	}
	return capAt(dedupe(roles), types.MaxRoles)
}

func (e *Extractor) extractCompanies(lines []string) []string {
	companies := make([]string, 0)
	for _, line := range lines {
		if e.lib.HasCompanySuffix(line) {
			companies = append(companies, strings.TrimSpace(line))
			if len(companies) == types.MaxCompanies {
				break
			}
		}
	}
	return companies
}
