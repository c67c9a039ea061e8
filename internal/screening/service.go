// Package screening exposes the four screening operations: parse, score, question generation and health.
package screening

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/logging"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/patterns"
	"github.com/jonathan/resume-screener/internal/questions"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// Version is reported by Health.
const Version = "1.0.0"

// Health status values
const (
	StatusHealthy      = "healthy"
	StatusInitializing = "initializing"
)

// ErrNotReady is returned by every operation of a service built without a pattern library.
var ErrNotReady = errors.New("models not initialized")

// Service wires the extractor, segmenter, question generator and scorer over one library.
// All of its parts are read-only, so a Service is safe for concurrent use.
type Service struct {
	lib       *patterns.Library
	extractor *parsing.Extractor
	segmenter *parsing.Segmenter
	generator *questions.Generator
	scorer    *ranking.Scorer
	logger    *zap.Logger
	started   time.Time
	now       func() time.Time
}

// New creates a service. A nil library yields a service that reports "initializing".
func New(lib *patterns.Library, logger *zap.Logger, opts ...ranking.Option) *Service {
	logger = logging.OrNop(logger)
	s := &Service{
		lib:     lib,
		logger:  logger,
		started: time.Now(),
		now:     time.Now,
	}
	if lib == nil {
		return s
	}

	s.extractor = parsing.NewExtractor(lib)
	s.segmenter = parsing.NewSegmenter(lib)
	s.generator = questions.NewGenerator()
	s.scorer = ranking.NewScorer(lib, s.extractor, s.generator, logger.Named("ranking"), opts...)
	return s
}

// Ready reports whether the service can serve requests.
func (s *Service) Ready() bool {
	return s.lib != nil
}

// Parse extracts a profile and the named sections from resume text.
func (s *Service) Parse(resumeText string) (*types.ParseResult, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}

	start := s.now()
	profile := s.extractor.Extract(resumeText)
	sections := s.segmenter.Segment(resumeText)
	elapsed := s.now().Sub(start).Seconds()

	s.logger.Debug("resume parsed",
		zap.Int("skills", len(profile.Skills)),
		zap.Int("sections", len(sections)),
		zap.Float64("seconds", elapsed))

	return &types.ParseResult{
		Profile:        profile,
		RawSections:    sections,
		ProcessingTime: elapsed,
	}, nil
}

// Score rates a resume against a job description and its requirements.
func (s *Service) Score(resumeText, jobDescription string, requirements []string) (*types.ScoreResult, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}

	result, err := s.scorer.Score(resumeText, jobDescription, requirements)
	if err != nil {
		s.logger.Error("resume scoring failed", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("resume scored",
		zap.String("candidate_id", result.CandidateID),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("recommendation", string(result.Recommendation)))
	return result, nil
}

// GenerateQuestions builds a categorized question set from a loosely typed profile.
func (s *Service) GenerateQuestions(profile map[string]any, jobDescription string, focusAreas []string) (*types.QuestionSet, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}

	set, err := s.generator.Categorized(profile, jobDescription, focusAreas)
	if err != nil {
		s.logger.Error("question generation failed", zap.Error(err))
		return nil, err
	}
	return set, nil
}

// Health reports readiness, version and uptime.
func (s *Service) Health() types.HealthStatus {
	now := s.now()
	status := StatusInitializing
	if s.Ready() {
		status = StatusHealthy
	}
	return types.HealthStatus{
		Status:        status,
		Timestamp:     now.UTC().Format(time.RFC3339),
		Version:       Version,
		ModelsLoaded:  s.Ready(),
		UptimeSeconds: now.Sub(s.started).Seconds(),
	}
}
