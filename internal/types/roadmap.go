package types

// LearningResource is a recommended course or similar learning material.
type LearningResource struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Difficulty string `json:"difficulty"`
}

// Project is a recommended hands-on project for practicing skills.
type Project struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SkillsPracticed []string `json:"skills_practiced"`
	Difficulty      string   `json:"difficulty"`
	EstimatedTime   string   `json:"estimated_time"`
}

// Certification is a recommended industry certification for a career.
type Certification struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	URL      string `json:"url,omitempty"`
	Cost     string `json:"cost,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// LearningPhase is one ordered stage of a roadmap. Phase numbers are
// contiguous starting at 1 and the sequence order encodes learning order.
type LearningPhase struct {
	Phase    int      `json:"phase"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Skills   []string `json:"skills"`
	Focus    string   `json:"focus"`
}

// Roadmap is a complete phased learning plan for closing a skill gap.
type Roadmap struct {
	CareerPath     string             `json:"career_path"`
	Timeline       string             `json:"timeline"`
	Phases         []LearningPhase    `json:"phases"`
	SkillsToLearn  []string           `json:"skills_to_learn"`
	Tools          []string           `json:"tools"`
	Projects       []Project          `json:"projects"`
	Certifications []Certification    `json:"certifications"`
	Resources      []LearningResource `json:"resources"`
}
