package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

// handleCreateRoadmap builds a learning roadmap for a target career and
// persists it for the authenticated user.
func (s *Server) handleCreateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req types.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if _, found := s.catalog.Career(req.CareerPath); !found {
		err := &matching.UnknownCareerError{Title: req.CareerPath}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	plan := s.planner.Build(req.CareerPath, req.MissingSkills, req.CurrentSkills)

	id, err := s.db.SaveRoadmap(r.Context(), userID, req.CareerPath, plan)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save roadmap")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":      id,
		"roadmap": plan,
	})
}

// handleListRoadmaps lists the authenticated user's saved roadmaps.
func (s *Server) handleListRoadmaps(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	roadmaps, err := s.db.ListRoadmaps(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list roadmaps")
		return
	}
	if roadmaps == nil {
		roadmaps = []db.SavedRoadmap{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roadmaps": roadmaps,
		"total":    len(roadmaps),
	})
}

// handleGetRoadmap returns one saved roadmap owned by the authenticated user.
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid roadmap id")
		return
	}

	roadmap, err := s.db.GetRoadmap(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get roadmap")
		return
	}
	// Hide other users' roadmaps behind a 404
	if roadmap == nil || roadmap.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "roadmap not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleDeleteRoadmap deletes a saved roadmap owned by the authenticated user.
func (s *Server) handleDeleteRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid roadmap id")
		return
	}

	if err := s.db.DeleteRoadmap(r.Context(), id, userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "roadmap not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "roadmap deleted"})
}

// handleSkillResources returns the learning material known for one skill.
func (s *Server) handleSkillResources(w http.ResponseWriter, r *http.Request) {
	skill := types.NormalizeSkill(r.PathValue("skill"))
	if skill == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing skill")
		return
	}

	resources := s.catalog.ResourcesFor(skill)
	if !s.catalog.AllSkills().Contains(skill) &&
		len(resources.Courses) == 0 && len(resources.Projects) == 0 {
		s.errorResponse(w, http.StatusNotFound, "unknown skill: "+skill)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skill":         skill,
		"courses":       resources.Courses,
		"projects":      resources.Projects,
		"tools":         stringsOrEmpty(s.catalog.ToolsFor(skill)),
		"prerequisites": stringsOrEmpty(s.catalog.Prerequisites(skill)),
		"related":       stringsOrEmpty(s.catalog.RelatedSkills(skill)),
	})
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
