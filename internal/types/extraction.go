package types

// SkillExtraction is the result of running the fixed-vocabulary skill
// extractor over a piece of text. Skills are normalized tokens; Categories
// groups them by catalog category (empty categories omitted).
type SkillExtraction struct {
	Skills           []string            `json:"skills"`
	Categories       map[string][]string `json:"categories"`
	Confidence       float64             `json:"confidence"`
	TotalSkillsFound int                 `json:"total_skills_found"`
}
