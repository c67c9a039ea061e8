package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logging"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	opParse     = "Resume parsing"
	opScore     = "Resume scoring"
	opQuestions = "Question generation"

	uploadField = "file"
)

// validatable is implemented by request types carrying struct-tag validation
type validatable interface {
	Validate() error
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Resume Screener Service",
		"version": screening.Version,
		"status":  "operational",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.Health())
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := s.decodeRequest(w, r, schemas.ParseRequest, &req); err != nil {
		s.fail(w, r, opParse, err)
		return
	}

	var result *types.ParseResult
	err := s.withWorker(r.Context(), func() (err error) {
		result, err = s.svc.Parse(req.ResumeText)
		return err
	})
	if err != nil {
		s.fail(w, r, opParse, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleParseFile extracts text from an uploaded resume file and parses it.
func (s *Server) handleParseFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.fail(w, r, opParse, &ErrBadRequest{Message: "invalid multipart form", Cause: err})
		return
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		s.fail(w, r, opParse, &ErrBadRequest{Message: fmt.Sprintf("missing %q file field", uploadField), Cause: err})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, r, opParse, &ErrBadRequest{Message: "failed to read upload", Cause: err})
		return
	}

	mediaType := ingestion.DetectMIME(header.Filename, data)
	s.logger.Debug("resume upload",
		zap.String("filename", logging.Truncate(header.Filename, 100)),
		zap.String("media_type", mediaType),
		zap.Int("bytes", len(data)))

	var result *types.ParseResult
	err = s.withWorker(r.Context(), func() error {
		text, err := ingestion.ExtractText(mediaType, data)
		if err != nil {
			return err
		}
		result, err = s.svc.Parse(text)
		return err
	})
	if err != nil {
		s.fail(w, r, opParse, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := s.decodeRequest(w, r, schemas.ScoreRequest, &req); err != nil {
		s.fail(w, r, opScore, err)
		return
	}

	var result *types.ScoreResult
	err := s.withWorker(r.Context(), func() (err error) {
		result, err = s.svc.Score(req.ResumeText, req.JobDescription, req.JobRequirements)
		return err
	})
	if err != nil {
		s.fail(w, r, opScore, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateQuestionsRequest
	if err := s.decodeRequest(w, r, schemas.QuestionsRequest, &req); err != nil {
		s.fail(w, r, opQuestions, err)
		return
	}

	var result *types.QuestionSet
	err := s.withWorker(r.Context(), func() (err error) {
		result, err = s.svc.GenerateQuestions(req.CandidateProfile, req.JobDescription, req.FocusAreas)
		return err
	})
	if err != nil {
		s.fail(w, r, opQuestions, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// decodeRequest checks the body against its JSON schema, decodes it into dst and validates the result.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, schema string, dst validatable) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return &ErrBadRequest{Message: "failed to read request body", Cause: err}
	}
	if err := schemas.Validate(schema, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &ErrBadRequest{Message: "invalid request body", Cause: err}
	}
	return dst.Validate()
}

// withWorker runs fn while holding one slot of the CPU-bound work pool.
func (s *Server) withWorker(ctx context.Context, fn func() error) error {
	if err := s.workers.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for worker: %w", err)
	}
	defer s.workers.Release(1)
	return fn()
}
