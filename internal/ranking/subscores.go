package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/patterns"
)

// Sub-score weights; they sum to 1.
const (
	skillOverlapWeight       = 0.30
	semanticSimilarityWeight = 0.25
	roleRelevanceWeight      = 0.25
	seniorityMatchWeight     = 0.20
)

// Neutral values used when an input is missing
const (
	defaultSkillOverlap   = 0.8 // no stated requirements
	defaultSimilarity     = 0.5 // similarity could not be computed
	defaultRoleRelevance  = 0.3 // no roles extracted
	defaultSeniorityMatch = 0.5 // experience not stated
)

const (
	seniorityBase      = 0.8
	seniorityBonusStep = 0.05
	seniorityBonusCap  = 0.3
	seniorityPenalty   = 0.15
	roleRelevanceScale = 2.0
)

// skillOverlap is the fraction of requirements found among the skills, compared case-insensitively.
func skillOverlap(skills, requirements []string) float64 {
	if len(requirements) == 0 {
		return defaultSkillOverlap
	}

	have := lowerSet(skills)
	matches := 0
	for _, req := range requirements {
		if _, ok := have[strings.ToLower(req)]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(requirements))
}

// missingSkills returns the requirements absent from skills, in requirement order.
func missingSkills(skills, requirements []string) []string {
	have := lowerSet(skills)
	missing := make([]string, 0)
	for _, req := range requirements {
		if _, ok := have[strings.ToLower(req)]; !ok {
			missing = append(missing, req)
		}
	}
	return missing
}

// roleRelevance counts a role as relevant when any of its words occurs in the job description.
// Half of the roles being relevant already saturates the score.
func roleRelevance(roles []string, jobDescription string) float64 {
	if len(roles) == 0 {
		return defaultRoleRelevance
	}

	jd := strings.ToLower(jobDescription)
	relevant := 0
	for _, role := range roles {
		for _, word := range strings.Fields(strings.ToLower(role)) {
			if strings.Contains(jd, word) {
				relevant++
				break
			}
		}
	}
	return math.Min(1.0, float64(relevant)/float64(len(roles))*roleRelevanceScale)
}

// seniorityMatch compares stated experience with the years the job description implies.
func seniorityMatch(lib *patterns.Library, years *int, jobDescription string) float64 {
	if years == nil {
		return defaultSeniorityMatch
	}

	actual := *years
	required := lib.RequiredYears(strings.ToLower(jobDescription))
	if actual >= required {
		bonus := math.Min(seniorityBonusCap, float64(actual-required)*seniorityBonusStep)
		return math.Min(1.0, seniorityBase+bonus)
	}
	return math.Max(0.0, seniorityBase-float64(required-actual)*seniorityPenalty)
}

// overallScore blends the sub-scores onto the 0-10 scale.
func overallScore(skill, similarity, role, seniority float64) float64 {
	return 10 * (skill*skillOverlapWeight +
		similarity*semanticSimilarityWeight +
		role*roleRelevanceWeight +
		seniority*seniorityMatchWeight)
}

// confidence rises with the score and is capped at 0.95.
func confidence(score float64) float64 {
	return math.Min(0.95, 0.6+score/20)
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
