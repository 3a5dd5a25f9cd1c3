package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/types"
)

// analysisResponse is the payload returned by the analysis endpoints.
type analysisResponse struct {
	*types.SkillExtraction
	RelatedSkills []string            `json:"related_skills"`
	Metadata      *ingestion.Metadata `json:"metadata,omitempty"`
}

// handleAnalyzeResume extracts skills from an uploaded PDF resume.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusUnsupportedMediaType, "only PDF files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	cleanedText, metadata, err := ingestion.IngestFromPDF(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, ingestion.ErrPDFParse) {
			s.errorResponse(w, http.StatusUnprocessableEntity, "could not extract text from PDF")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to process PDF")
		return
	}

	extraction := s.extractor.ExtractFromText(cleanedText)
	response := &analysisResponse{
		SkillExtraction: extraction,
		RelatedSkills:   s.extractor.EnhanceWithRelated(extraction.Skills),
		Metadata:        metadata,
	}

	input := map[string]any{"filename": header.Filename, "word_count": metadata.WordCount}
	if _, err := s.db.SaveAnalysis(r.Context(), userID, "resume_analysis", input, response); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleAnalyzeText extracts skills from raw text.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req types.TextAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	cleanedText := ingestion.CleanText(req.Text)
	extraction := s.extractor.ExtractFromText(cleanedText)
	response := &analysisResponse{
		SkillExtraction: extraction,
		RelatedSkills:   s.extractor.EnhanceWithRelated(extraction.Skills),
	}

	input := map[string]any{"char_count": len(req.Text)}
	if _, err := s.db.SaveAnalysis(r.Context(), userID, "text_analysis", input, response); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleSkillCategories lists the skill vocabulary grouped by category.
func (s *Server) handleSkillCategories(w http.ResponseWriter, _ *http.Request) {
	groups := s.catalog.SkillGroups()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"categories":   groups,
		"total_skills": len(s.catalog.AllSkills()),
	})
}
