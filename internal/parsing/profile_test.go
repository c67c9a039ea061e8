package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/resume-screener/internal/patterns"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const johnDoeResume = `
    John Doe
    Software Engineer
    john@example.com
    (555) 123-4567

    Experience:
    5 years of experience in Python development

    Skills:
    Python, Django, JavaScript, React

    Education:
    Bachelor's Degree in Computer Science
    `

func newTestExtractor() *Extractor {
	return NewExtractor(patterns.Default())
}

func TestExtract_JohnDoe(t *testing.T) {
	p := newTestExtractor().Extract(johnDoeResume)

	require.NotNil(t, p.Name)
	assert.Equal(t, "John Doe", *p.Name)
	require.NotNil(t, p.Email)
	assert.Equal(t, "john@example.com", *p.Email)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "(555) 123-4567", *p.Phone)
	require.NotNil(t, p.ExperienceYears)
	assert.Equal(t, 5, *p.ExperienceYears)

	assert.Equal(t, []string{"Python", "Django", "Javascript", "Js", "React", "Java"}, p.Skills)
	assert.Equal(t, []string{"Bachelor's Degree in Computer Science"}, p.Education)
	assert.Equal(t, []string{"Software Engineer"}, p.Roles)
	assert.Empty(t, p.Companies)
	assert.NotNil(t, p.Companies, "list fields are never nil")
}

func TestExtract_EmptyText(t *testing.T) {
	p := newTestExtractor().Extract("")

	assert.Nil(t, p.Name)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.Phone)
	assert.Nil(t, p.ExperienceYears)
	assert.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Roles)
	assert.NotNil(t, p.Companies)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *string
	}{
		{"first line", "Jane Smith\nEngineer", types.StringPtr("Jane Smith")},
		{"skips blank lines", "\n\n   \nJane Smith", types.StringPtr("Jane Smith")},
		{"skips digit-only line", "2024\nJane Smith", types.StringPtr("Jane Smith")},
		{"skips long line", "This line has far too many words\nJane Smith", types.StringPtr("Jane Smith")},
		{"four tokens allowed", "Mary Jane Van Dyke", types.StringPtr("Mary Jane Van Dyke")},
		{"only first three lines", "1\n2\n3\nJane Smith", nil},
		{"nothing", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractName(splitLines(tt.text)))
		})
	}
}

func TestExtractPhone_PatternOrder(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name     string
		text     string
		expected *string
	}{
		{"international", "call +1-555-123-4567 now", types.StringPtr("+1-555-123-4567")},
		{"parenthesized", "phone (555) 123-4567", types.StringPtr("(555) 123-4567")},
		{"plain", "phone 555.123.4567", types.StringPtr("555.123.4567")},
		// the first pattern wins even when a later pattern matches earlier in the text
		{"first pattern wins", "(555) 123-4567 or 1 555 123 4567", types.StringPtr("1 555 123 4567")},
		{"none", "no digits here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.extractPhone(tt.text))
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name     string
		text     string
		expected *int
	}{
		{"years of experience", "I have 7 years of experience", types.IntPtr(7)},
		{"plus suffix", "10+ years of experience", types.IntPtr(10)},
		{"years experience", "3 years experience in go", types.IntPtr(3)},
		{"experience colon", "experience: 4 years", types.IntPtr(4)},
		{"yrs", "6 yrs experience", types.IntPtr(6)},
		{"first pattern wins", "experience: 2 years, 9 years of experience", types.IntPtr(9)},
		{"first mention of a pattern wins", "1 year of experience then 8 years of experience", types.IntPtr(1)},
		{"absent", "lots of experience", nil},
		{"overflowing digits read as absent", "99999999999999999999 years of experience, experience: 4 years", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.extractExperienceYears(strings.ToLower(tt.text)))
		})
	}
}

func TestExtractSkills_DedupAndCap(t *testing.T) {
	e := newTestExtractor()

	skills := e.extractSkills("docker kubernetes")
	assert.Equal(t, []string{"Docker", "Kubernetes"}, skills, "devops repeats are dropped")

	var all []string
	for _, c := range patterns.Default().SkillCategories {
		all = append(all, c.Keywords...)
	}
	skills = e.extractSkills(strings.Join(all, " "))
	assert.Len(t, skills, types.MaxSkills)
	assert.Equal(t, "Python", skills[0])

	seen := map[string]bool{}
	for _, s := range skills {
		key := strings.ToLower(s)
		assert.False(t, seen[key], "duplicate skill %q", s)
		seen[key] = true
	}
}

func TestExtractEducation(t *testing.T) {
	e := newTestExtractor()

	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("  University number %d  ", i))
	}
	lines = append(lines, "Worked at a bakery")

	education := e.extractEducation(lines)
	require.Len(t, education, types.MaxEducation)
	assert.Equal(t, "University number 0", education[0])
	assert.Equal(t, "University number 4", education[4])

	assert.Equal(t, []string{"MBA, Wharton"}, e.extractEducation([]string{"MBA, Wharton"}))
}

func TestExtractRoles(t *testing.T) {
	e := newTestExtractor()

	roles := e.extractRoles("Lead DEVELOPER and data scientist. Former developer, later Lead. Designer.")
	assert.Equal(t, []string{"Developer", "Data Scientist", "Lead", "Designer"}, roles)

	var b strings.Builder
	for _, r := range []string{"developer", "programmer", "architect", "analyst", "researcher", "manager",
		"lead", "director", "supervisor", "consultant", "specialist", "expert", "designer", "admin"} {
		b.WriteString(r + " ")
	}
	assert.Len(t, e.extractRoles(b.String()), types.MaxRoles)
}

func TestExtractRoles_Deterministic(t *testing.T) {
	e := newTestExtractor()
	text := "manager, developer, analyst, consultant, admin, architect"

	first := e.extractRoles(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, e.extractRoles(text))
	}
}

func TestExtractCompanies(t *testing.T) {
	e := newTestExtractor()

	lines := []string{
		"Acme Inc",
		"widgets llc",
		" Globex Corp ",
		"Initech Ltd",
		"The Example Company",
		"Umbrella LLC",
		"Hooli Inc",
	}
	companies := e.extractCompanies(lines)
	assert.Equal(t, []string{"Acme Inc", "Globex Corp", "Initech Ltd", "The Example Company", "Umbrella LLC"}, companies)
}
