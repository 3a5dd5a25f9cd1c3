package matching

import (
	"github.com/jonathan/career-compass/internal/types"
)

// AnalyzeGap computes the skill gap between the user's skills and one
// target career. Returns UnknownCareerError when the career title is not
// in the catalog.
func (r *Ranker) AnalyzeGap(userSkills []string, careerTitle string) (*types.SkillGap, error) {
	career, ok := r.catalog.Career(careerTitle)
	if !ok {
		return nil, &UnknownCareerError{Title: careerTitle}
	}

	userSet := types.NewSkillSet(userSkills)
	requiredSet := types.NewSkillSet(career.RequiredSkills)

	matched := make(types.SkillSet)
	missing := make(types.SkillSet)
	for skill := range requiredSet {
		if userSet[skill] {
			matched[skill] = true
		} else {
			missing[skill] = true
		}
	}

	gapPct := 0.0
	if len(requiredSet) > 0 {
		gapPct = float64(len(missing)) / float64(len(requiredSet)) * 100
	}

	return &types.SkillGap{
		MissingSkills: missing.Sorted(),
		MatchedSkills: matched.Sorted(),
		GapPercentage: round1(gapPct),
		TotalRequired: len(requiredSet),
		TotalMatched:  len(matched),
	}, nil
}
