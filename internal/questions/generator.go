// Package questions provides rule-based interview question generation from candidate profiles.
package questions

import (
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/jonathan/resume-screener/internal/prompts"
	"github.com/jonathan/resume-screener/internal/types"
)

// Limits and tiers
const (
	MaxProfileQuestions = 5
	technicalSkillCount = 3
	minutesPerQuestion  = 5

	ledProjectYears = 5
	seniorYears     = 7
	midYears        = 3
)

// Categories and difficulty levels in a QuestionSet
const (
	CategoryTechnical  = "technical"
	CategoryExperience = "experience"
	CategoryBehavioral = "behavioral"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
)

// technicalTopics is checked in order; a skill takes the first topic whose needle it contains.
var technicalTopics = []struct {
	needles []string
	key     string
}{
	{[]string{"python"}, "technical.python"},
	{[]string{"javascript"}, "technical.javascript"},
	{[]string{"react"}, "technical.react"},
	{[]string{"sql", "database"}, "technical.database"},
	{[]string{"aws", "cloud"}, "technical.cloud"},
}

// Generator builds interview questions. Its question text is resolved once at construction,
// so a Generator is read-only and safe for concurrent use.
type Generator struct {
	general    []string
	behavioral []string
	senior     []string
	mid        []string
	junior     []string
	technical  map[string]string
}

// NewGenerator creates a generator from the embedded question templates.
func NewGenerator() *Generator {
	get := func(key string) string { return prompts.MustGet(prompts.QuestionsFile, key) }

	g := &Generator{
		general:    []string{get("general.interest"), get("general.stay-current"), get("general.learn-quickly")},
		behavioral: []string{get("behavioral.deadline"), get("behavioral.collaboration"), get("behavioral.criticism")},
		senior:     []string{get("experience.senior.mentoring"), get("experience.senior.architecture")},
		mid:        []string{get("experience.mid.debugging"), get("experience.mid.code-review")},
		junior:     []string{get("experience.junior.challenge"), get("experience.junior.learning")},
		technical:  make(map[string]string, len(technicalTopics)),
	}
	for _, topic := range technicalTopics {
		g.technical[topic.key] = get(topic.key)
	}
	return g
}

// ForProfile returns up to five questions tailored to an extracted profile.
// Skill, experience and role questions come first; the general questions fill the rest.
func (g *Generator) ForProfile(p types.ExtractedProfile) []string {
	out := make([]string, 0, MaxProfileQuestions+len(g.general))

	if len(p.Skills) > 0 {
		out = append(out, prompts.Render(prompts.QuestionsFile, "profile.primary-skill", map[string]string{"Skill": p.Skills[0]}))
		if len(p.Skills) > 1 {
			out = append(out, prompts.Render(prompts.QuestionsFile, "profile.secondary-skill", map[string]string{"Skill": p.Skills[1]}))
		}
	}

	if p.ExperienceYears != nil && *p.ExperienceYears > 0 {
		if *p.ExperienceYears >= ledProjectYears {
			out = append(out, prompts.MustGet(prompts.QuestionsFile, "profile.led-challenge"))
		} else {
			out = append(out, prompts.MustGet(prompts.QuestionsFile, "profile.proud-project"))
		}
	}

	if len(p.Roles) > 0 {
		out = append(out, prompts.Render(prompts.QuestionsFile, "profile.role-application", map[string]string{"Role": p.Roles[0]}))
	}

	out = append(out, g.general...)
	if len(out) > MaxProfileQuestions {
		out = out[:MaxProfileQuestions]
	}
	return out
}

// profileInput is the subset of a loosely typed profile mapping the generator reads
type profileInput struct {
	Skills          []string `mapstructure:"skills"`
	ExperienceYears *int     `mapstructure:"experience_years"`
}

// Categorized builds a categorized question set from a profile-like mapping.
// A "skills" key yields technical questions and an "experience_years" key yields experience
// questions; a key whose value is null counts as absent. Behavioral questions are always
// included. focusAreas is accepted for API compatibility and does not change the output.
func (g *Generator) Categorized(profile map[string]any, jobDescription string, focusAreas []string) (*types.QuestionSet, error) {
	var in profileInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &in,
	})
	if err != nil {
		return nil, &Error{Message: "failed to create profile decoder", Cause: err}
	}
	if err := decoder.Decode(profile); err != nil {
		return nil, &Error{Message: "invalid candidate profile", Cause: err}
	}

	set := &types.QuestionSet{
		Questions:          make([]string, 0),
		QuestionCategories: make(map[string][]string),
		DifficultyLevels:   make(map[string]string),
	}
	add := func(category, difficulty string, qs []string) {
		set.Questions = append(set.Questions, qs...)
		set.QuestionCategories[category] = qs
		for _, q := range qs {
			set.DifficultyLevels[q] = difficulty
		}
	}

	if present(profile, "skills") {
		add(CategoryTechnical, DifficultyMedium, g.technicalQuestions(in.Skills))
	}
	if present(profile, "experience_years") && in.ExperienceYears != nil {
		add(CategoryExperience, DifficultyMedium, g.experienceQuestions(*in.ExperienceYears))
	}
	add(CategoryBehavioral, DifficultyEasy, append([]string(nil), g.behavioral...))

	set.EstimatedDuration = minutesPerQuestion * len(set.Questions)
	return set, nil
}

func present(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

// technicalQuestions returns one question for each of the first three skills.
func (g *Generator) technicalQuestions(skills []string) []string {
	if len(skills) > technicalSkillCount {
		skills = skills[:technicalSkillCount]
	}

	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		out = append(out, g.technicalQuestion(skill))
	}
	return out
}

func (g *Generator) technicalQuestion(skill string) string {
	lower := strings.ToLower(skill)
	for _, topic := range technicalTopics {
		for _, needle := range topic.needles {
			if strings.Contains(lower, needle) {
				return g.technical[topic.key]
			}
		}
	}
	return prompts.Render(prompts.QuestionsFile, "technical.fallback", map[string]string{"Skill": skill})
}

func (g *Generator) experienceQuestions(years int) []string {
	var tier []string
	switch {
	case years >= seniorYears:
		tier = g.senior
	case years >= midYears:
		tier = g.mid
	default:
		tier = g.junior
	}
	return append([]string(nil), tier...)
}
