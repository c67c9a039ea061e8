// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation is the ordinal label summarizing overall match strength
type Recommendation string

// Recommendation values, weakest first
const (
	NoMatch       Recommendation = "NO_MATCH"
	WeakMatch     Recommendation = "WEAK_MATCH"
	ModerateMatch Recommendation = "MODERATE_MATCH"
	GoodMatch     Recommendation = "GOOD_MATCH"
	StrongMatch   Recommendation = "STRONG_MATCH"
)

// Recommendations lists every label in ascending order.
var Recommendations = []Recommendation{NoMatch, WeakMatch, ModerateMatch, GoodMatch, StrongMatch}

// Rank returns the ordinal position of r (NO_MATCH = 0), or -1 for an unknown label.
func (r Recommendation) Rank() int {
	for i, rec := range Recommendations {
		if rec == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the enumerated labels.
func (r Recommendation) Valid() bool {
	return r.Rank() >= 0
}

// ScoreBreakdown holds the four sub-scores, each in [0, 1]
type ScoreBreakdown struct {
	SkillOverlap       float64 `json:"skill_overlap"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	RoleRelevance      float64 `json:"role_relevance"`
	SeniorityMatch     float64 `json:"seniority_match"`
}

// ScoreResult is the full outcome of matching a resume against a job
type ScoreResult struct {
	CandidateID        string         `json:"candidate_id"`
	OverallScore       float64        `json:"overall_score"` // 0-10
	ScoreBreakdown     ScoreBreakdown `json:"score_breakdown"`
	ExtractedSkills    []string       `json:"extracted_skills"`
	MissingSkills      []string       `json:"missing_skills"`
	Summary            string         `json:"summary"`
	InterviewQuestions []string       `json:"interview_questions"`
	Recommendation     Recommendation `json:"recommendation"`
	Confidence         float64        `json:"confidence"` // 0-0.95
}

// QuestionSet is the categorized interview question output
type QuestionSet struct {
	Questions          []string            `json:"questions"`
	QuestionCategories map[string][]string `json:"question_categories"`
	DifficultyLevels   map[string]string   `json:"difficulty_levels"`
	EstimatedDuration  int                 `json:"estimated_duration"` // minutes
}

// HealthStatus reports service readiness
type HealthStatus struct {
	Status        string  `json:"status"` // healthy or initializing
	Timestamp     string  `json:"timestamp"`
	Version       string  `json:"version"`
	ModelsLoaded  bool    `json:"models_loaded"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
