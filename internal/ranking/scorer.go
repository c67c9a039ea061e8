// Package ranking scores a resume against a job description and maps the score to a recommendation.
package ranking

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/logging"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/patterns"
	"github.com/jonathan/resume-screener/internal/questions"
	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/types"
)

// SimilarityFunc compares two documents and returns a score in [0,1].
type SimilarityFunc func(a, b string) (float64, error)

// Scorer combines the four sub-scores into a ScoreResult. It holds no mutable state.
type Scorer struct {
	lib        *patterns.Library
	extractor  *parsing.Extractor
	generator  *questions.Generator
	similarity SimilarityFunc
	logger     *zap.Logger
}

// Option configures a Scorer
type Option func(*Scorer)

// WithSimilarity replaces the TF-IDF cosine comparison.
func WithSimilarity(fn SimilarityFunc) Option {
	return func(s *Scorer) {
		s.similarity = fn
	}
}

// NewScorer creates a scorer. A nil logger discards output.
func NewScorer(lib *patterns.Library, extractor *parsing.Extractor, generator *questions.Generator, logger *zap.Logger, opts ...Option) *Scorer {
	s := &Scorer{
		lib:        lib,
		extractor:  extractor,
		generator:  generator,
		similarity: similarity.Cosine,
		logger:     logging.OrNop(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score extracts a profile from resumeText and rates it against the job.
// Only a similarity failure is absorbed; any other fault fails the whole call with a *ScoringError.
func (s *Scorer) Score(resumeText, jobDescription string, requirements []string) (result *types.ScoreResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ScoringError{Message: "unexpected fault", Cause: fmt.Errorf("%v", r)}
		}
	}()

	profile := s.extractor.Extract(resumeText)

	skill := skillOverlap(profile.Skills, requirements)
	semantic := s.semanticSimilarity(resumeText, jobDescription)
	role := roleRelevance(profile.Roles, jobDescription)
	seniority := seniorityMatch(s.lib, profile.ExperienceYears, jobDescription)

	overall := overallScore(skill, semantic, role, seniority)

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, &ScoringError{Message: "failed to generate candidate id", Cause: err}
	}

	return &types.ScoreResult{
		CandidateID:  id.String(),
		OverallScore: round(overall, 2),
		ScoreBreakdown: types.ScoreBreakdown{
			SkillOverlap:       round(skill, 3),
			SemanticSimilarity: round(semantic, 3),
			RoleRelevance:      round(role, 3),
			SeniorityMatch:     round(seniority, 3),
		},
		ExtractedSkills:    profile.Skills,
		MissingSkills:      missingSkills(profile.Skills, requirements),
		Summary:            summarize(profile, overall),
		InterviewQuestions: s.generator.ForProfile(profile),
		Recommendation:     Classify(overall),
		Confidence:         round(confidence(overall), 3),
	}, nil
}

// semanticSimilarity falls back to a neutral value when the comparison fails or panics.
func (s *Scorer) semanticSimilarity(resumeText, jobDescription string) float64 {
	score, err := s.safeSimilarity(resumeText, jobDescription)
	if err != nil {
		s.logger.Warn("semantic similarity unavailable, using default",
			zap.Error(err),
			zap.Float64("default", defaultSimilarity))
		return defaultSimilarity
	}
	return score
}

func (s *Scorer) safeSimilarity(a, b string) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("similarity panicked: %v", r)
		}
	}()
	return s.similarity(a, b)
}
