// Package observability provides formatted, human-readable output for the CLI's text mode.
package observability

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, shorten(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// shorten truncates s to at most limit runes, marking the cut with "...".
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-3]) + "..."
}

func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// PrintProfile outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintProfile(result *types.ParseResult) {
	if result == nil {
		return
	}
	profile := result.Profile

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(profile.Phone)))
	if profile.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Years:    %d\n", *profile.ExperienceYears))
	} else {
		sb.WriteString("Years:    -\n")
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", profile.Skills, maxItemsToShow*2)
	writeList(&sb, "Roles", profile.Roles, maxItemsToShow)
	writeList(&sb, "Education", profile.Education, 3)
	writeList(&sb, "Companies", profile.Companies, 3)

	if len(result.RawSections) > 0 {
		names := make([]string, 0, len(result.RawSections))
		for name := range result.RawSections {
			names = append(names, name)
		}
		slices.Sort(names)
		sb.WriteString(fmt.Sprintf("Sections: %s\n", strings.Join(names, ", ")))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the match score, its breakdown and the recommendation.
func (p *Printer) PrintScore(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:          %.2f / 10\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Recommendation))
	sb.WriteString(fmt.Sprintf("Confidence:     %.0f%%\n", result.Confidence*100))
	sb.WriteString("\n")

	b := result.ScoreBreakdown
	sb.WriteString("Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  skill overlap        %.3f\n", b.SkillOverlap))
	sb.WriteString(fmt.Sprintf("  semantic similarity  %.3f\n", b.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("  role relevance       %.3f\n", b.RoleRelevance))
	sb.WriteString(fmt.Sprintf("  seniority match      %.3f\n", b.SeniorityMatch))
	sb.WriteString("\n")

	writeList(&sb, "Missing skills", result.MissingSkills, maxItemsToShow)
	sb.WriteString(result.Summary)

	p.printBox("MATCH SCORE", sb.String())
}

// PrintQuestions outputs interview questions grouped by category.
func (p *Printer) PrintQuestions(set *types.QuestionSet) {
	if set == nil || len(set.Questions) == 0 {
		return
	}

	categories := make([]string, 0, len(set.QuestionCategories))
	for category := range set.QuestionCategories {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d questions, about %d minutes\n\n", len(set.Questions), set.EstimatedDuration))

	for i, category := range categories {
		sb.WriteString(strings.ToUpper(category) + "\n")
		for _, q := range set.QuestionCategories[category] {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", set.DifficultyLevels[q], q))
		}
		if i < len(categories)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
