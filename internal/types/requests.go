package types

import "github.com/go-playground/validator/v10"

// ProfileInput is a user profile submitted for career prediction.
type ProfileInput struct {
	Education       string   `json:"education" validate:"required,max=500"`
	Skills          []string `json:"skills" validate:"required,min=1,max=50,dive,min=1"`
	Interests       []string `json:"interests" validate:"omitempty,max=20,dive,min=1"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0,lte=50"`
}

// Validate validates the ProfileInput using the validator.
func (p *ProfileInput) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// GapRequest asks for a skill gap analysis against a target career.
type GapRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,max=50,dive,min=1"`
}

// Validate validates the GapRequest using the validator.
func (r *GapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RoadmapRequest asks for a learning roadmap toward a target career.
type RoadmapRequest struct {
	CareerPath    string   `json:"career_path" validate:"required"`
	MissingSkills []string `json:"missing_skills" validate:"required,min=1,max=50,dive,min=1"`
	CurrentSkills []string `json:"current_skills" validate:"omitempty,max=50,dive,min=1"`
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TextAnalysisRequest asks for skill extraction over raw text.
type TextAnalysisRequest struct {
	Text string `json:"text" validate:"required,min=20"`
}

// Validate validates the TextAnalysisRequest using the validator.
func (r *TextAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
