package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/types"
)

// handleUpsertProfile creates or replaces the authenticated user's profile.
func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var input types.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile := &db.Profile{
		UserID:          userID,
		Education:       input.Education,
		Skills:          db.StringArray(types.NormalizeSkills(input.Skills)),
		Interests:       db.StringArray(input.Interests),
		ExperienceYears: input.ExperienceYears,
	}
	if err := s.db.UpsertProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGetProfile returns the authenticated user's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleDeleteProfile deletes the authenticated user's profile data along
// with their stored analyses and roadmaps. The account itself survives.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteProfileData(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete profile data")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "profile data deleted"})
}

// handleListAnalyses lists the authenticated user's stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	analyses, err := s.db.ListAnalyses(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []db.Analysis{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"total":    len(analyses),
	})
}

// handleGetAnalysis returns one stored analysis owned by the authenticated user.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	// Hide other users' analyses behind a 404
	if analysis == nil || analysis.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}
