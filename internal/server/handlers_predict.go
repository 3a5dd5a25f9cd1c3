package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// predictionResponse is the payload returned by POST /predict/career.
type predictionResponse struct {
	Predictions []types.CareerScore `json:"predictions"`
	SkillGap    *types.SkillGap     `json:"skill_gap,omitempty"`
	Timestamp   string              `json:"timestamp"`
}

// handlePredictCareer ranks careers for a submitted profile and reports the
// skill gap against the top match.
func (s *Server) handlePredictCareer(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var profile types.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	predictions := s.ranker.RankCareers(profile.Skills, s.cfg.PredictTopK)

	response := &predictionResponse{
		Predictions: predictions,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if len(predictions) > 0 {
		gap, err := s.ranker.AnalyzeGap(profile.Skills, predictions[0].CareerTitle)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		response.SkillGap = gap
	}

	if _, err := s.db.SaveAnalysis(r.Context(), userID, "career_prediction", &profile, response); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleListCareers lists every career in the catalog.
func (s *Server) handleListCareers(w http.ResponseWriter, _ *http.Request) {
	careers := s.catalog.Careers()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"careers": careers,
		"total":   len(careers),
	})
}

// handleGetCareer returns a single career profile by title.
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	career, ok := s.catalog.Career(title)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "career not found: "+title)
		return
	}
	s.jsonResponse(w, http.StatusOK, career)
}

// handleSkillGap analyzes the gap between submitted skills and a target career.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}

	var req types.GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	title := r.PathValue("title")
	gap, err := s.ranker.AnalyzeGap(req.Skills, title)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"career_path": title,
		"skill_gap":   gap,
	})
}
