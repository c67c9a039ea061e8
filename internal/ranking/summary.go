package ranking

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/prompts"
	"github.com/jonathan/resume-screener/internal/types"
)

const summarySkillCount = 5

// summarize writes the one-sentence verdict for the band the score falls in.
func summarize(p types.ExtractedProfile, score float64) string {
	skills := prompts.MustGet(prompts.SummariesFile, "skills.none")
	if len(p.Skills) > 0 {
		top := p.Skills
		if len(top) > summarySkillCount {
			top = top[:summarySkillCount]
		}
		skills = prompts.Render(prompts.SummariesFile, "skills.listed", map[string]string{"List": strings.Join(top, ", ")})
	}

	experience := prompts.MustGet(prompts.SummariesFile, "experience.unknown")
	if p.ExperienceYears != nil && *p.ExperienceYears > 0 {
		experience = prompts.Render(prompts.SummariesFile, "experience.years", map[string]string{"Years": strconv.Itoa(*p.ExperienceYears)})
	}

	return prompts.Render(prompts.SummariesFile, summaryBand(score), map[string]string{
		"Skills":     skills,
		"Experience": experience,
	})
}

func summaryBand(score float64) string {
	switch Classify(score) {
	case types.StrongMatch:
		return "band.excellent"
	case types.GoodMatch:
		return "band.good"
	case types.ModerateMatch:
		return "band.moderate"
	case types.WeakMatch:
		return "band.limited"
	default:
		return "band.minimal"
	}
}
