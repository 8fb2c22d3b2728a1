// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/optimize"
	"github.com/jonathan/resume-optimizer/internal/plan"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// handleScore scores a resume against a job posting without persisting anything.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := analyze.Job(req.JobText)
	if err != nil {
		s.jobAnalysisError(w, err)
		return
	}

	report, err := s.engine.ScoreProfile(r.Context(), req.ResumeText, req.JobText, profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_profile":  profile,
		"match_report": report,
	})
}

// handlePlan scores a resume and builds the rule-based improvement plan.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := analyze.Job(req.JobText)
	if err != nil {
		s.jobAnalysisError(w, err)
		return
	}

	report, err := s.engine.ScoreProfile(r.Context(), req.ResumeText, req.JobText, profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	improvementPlan := plan.Build(report, profile, req.ResumeText, plan.DefaultTargetScore)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"match_report":     report,
		"improvement_plan": improvementPlan,
	})
}

// handleOptimize runs the agentic optimizer loop and persists the run.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if s.optimizer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "optimizer unavailable: server started without an API key")
		return
	}

	var req types.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := analyze.Job(req.JobText)
	if err != nil {
		s.jobAnalysisError(w, err)
		return
	}

	opts := optimize.Options{
		TargetScore:   req.TargetScore,
		MaxIterations: req.MaxIterations,
	}
	if opts.TargetScore == 0 {
		opts.TargetScore = optimize.DefaultTargetScore
	}

	runID, err := s.db.CreateRun(r.Context(), profile.Company, profile.Title, "", opts.TargetScore)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.db.SaveJobProfile(r.Context(), runID, profile); err != nil {
		log.Printf("failed to save job profile for run %s: %v", runID, err)
	}

	result, err := s.optimizer.Run(r.Context(), req.ResumeText, req.JobText, opts)
	if err != nil {
		if dbErr := s.db.CompleteRun(r.Context(), runID, db.StatusFailed, nil); dbErr != nil {
			log.Printf("failed to mark run %s failed: %v", runID, dbErr)
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.db.SaveOptimizationResult(r.Context(), runID, result); err != nil {
		log.Printf("failed to save optimization result for run %s: %v", runID, err)
	}
	finalScore := result.FinalScore
	if err := s.db.CompleteRun(r.Context(), runID, db.StatusCompleted, &finalScore); err != nil {
		log.Printf("failed to complete run %s: %v", runID, err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id": runID,
		"result": result,
	})
}

// handleListRuns lists recent optimization runs, with optional filters.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	filters := db.RunFilters{
		Company: r.URL.Query().Get("company"),
		Status:  r.URL.Query().Get("status"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		filters.Limit = limit
	}

	runs, err := s.db.ListRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one optimization run with its stored result, if any.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrRunNotFound{RunID: runID}).Error())
		return
	}

	response := map[string]any{"run": run}

	result, err := s.db.GetOptimizationResultByRunID(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result != nil {
		response["result"] = result
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleRunArtifacts lists the stored artifacts for a run.
func (s *Server) handleRunArtifacts(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrRunNotFound{RunID: runID}).Error())
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if artifacts == nil {
		artifacts = []db.ArtifactSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"artifacts": artifacts})
}

// handleDeleteRun deletes a run and its artifacts.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrRunNotFound{RunID: runID}).Error())
		return
	}

	if err := s.db.DeleteRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parseRunID extracts and parses the {id} path value, writing a 400 on failure.
func (s *Server) parseRunID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	runID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return uuid.Nil, false
	}
	return runID, true
}

// jobAnalysisError maps job analysis failures to the right status code. A text
// that fails posting validation is a client error, not a server fault.
func (s *Server) jobAnalysisError(w http.ResponseWriter, err error) {
	var validationErr *analyze.ValidationError
	if errors.As(err, &validationErr) {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}
