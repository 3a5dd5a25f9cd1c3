package types

// CareerProfile describes a job role in the career catalog: the skills it
// requires plus descriptive metadata. Profiles are static, read-only data
// loaded once at process start.
type CareerProfile struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	AverageSalary  string   `json:"average_salary"`
	GrowthRate     string   `json:"growth_rate"`
	Category       string   `json:"category"`
}

// CareerScore is the per-request scoring result for a single career.
// Confidence blends set-overlap, vector-similarity and percentage-match
// signals into a single [0,1] value.
type CareerScore struct {
	CareerTitle     string   `json:"career_title"`
	Confidence      float64  `json:"confidence"`
	Description     string   `json:"description"`
	AverageSalary   string   `json:"average_salary"`
	GrowthRate      string   `json:"growth_rate"`
	RequiredSkills  []string `json:"required_skills"`
	MatchPercentage float64  `json:"skill_match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

// SkillGap describes the gap between a user's skills and one target career.
type SkillGap struct {
	MissingSkills []string `json:"missing_skills"`
	MatchedSkills []string `json:"matched_skills"`
	GapPercentage float64  `json:"gap_percentage"`
	TotalRequired int      `json:"total_required"`
	TotalMatched  int      `json:"total_matched"`
}
