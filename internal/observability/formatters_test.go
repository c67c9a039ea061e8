package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.ParseResult{
		Profile: types.ExtractedProfile{
			Name:            types.StringPtr("John Doe"),
			Email:           types.StringPtr("john@example.com"),
			ExperienceYears: types.IntPtr(5),
			Skills:          []string{"Python", "Django"},
			Roles:           []string{"Software Engineer"},
		},
		RawSections: types.SectionMap{"skills": "Python", "education": "BSc"},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "John Doe")
	assert.Contains(t, output, "john@example.com")
	assert.Contains(t, output, "Phone:    -")
	assert.Contains(t, output, "Years:    5")
	assert.Contains(t, output, "• Django")
	assert.Contains(t, output, "Sections: education, skills")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(&types.ScoreResult{
		OverallScore:   8.1,
		Recommendation: types.StrongMatch,
		Confidence:     0.9,
		ScoreBreakdown: types.ScoreBreakdown{SkillOverlap: 1, SemanticSimilarity: 0.4, RoleRelevance: 1, SeniorityMatch: 1},
		MissingSkills:  []string{"Kubernetes"},
		Summary:        "Excellent match.",
	})
	output := buf.String()

	assert.Contains(t, output, "MATCH SCORE")
	assert.Contains(t, output, "8.10 / 10")
	assert.Contains(t, output, string(types.StrongMatch))
	assert.Contains(t, output, "90%")
	assert.Contains(t, output, "semantic similarity  0.400")
	assert.Contains(t, output, "• Kubernetes")
	assert.Contains(t, output, "Excellent match.")
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuestions(&types.QuestionSet{
		Questions: []string{"Tell me about Python.", "How do you handle deadlines?"},
		QuestionCategories: map[string][]string{
			"technical":  {"Tell me about Python."},
			"behavioral": {"How do you handle deadlines?"},
		},
		DifficultyLevels: map[string]string{
			"Tell me about Python.":        "medium",
			"How do you handle deadlines?": "easy",
		},
		EstimatedDuration: 10,
	})
	output := buf.String()

	assert.Contains(t, output, "2 questions, about 10 minutes")
	assert.Less(t, strings.Index(output, "BEHAVIORAL"), strings.Index(output, "TECHNICAL"))
	assert.Contains(t, output, "[easy] How do you handle deadlines?")
}

func TestPrintQuestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintQuestions(&types.QuestionSet{})
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}
