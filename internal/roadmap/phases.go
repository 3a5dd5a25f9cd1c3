package roadmap

import "github.com/jonathan/career-compass/internal/types"

// Fixed phase metadata. The trailing portfolio phase is always present;
// the three skill phases appear only when they receive skills.
const (
	foundationTitle    = "Foundation"
	foundationDuration = "1-2 months"
	foundationFocus    = "Build core competencies"

	intermediateTitle    = "Intermediate"
	intermediateDuration = "2-3 months"
	intermediateFocus    = "Develop practical skills"

	advancedTitle    = "Advanced"
	advancedDuration = "2-4 months"
	advancedFocus    = "Master specialized technologies"

	portfolioTitle    = "Portfolio Projects"
	portfolioDuration = "1-2 months"
	portfolioFocus    = "Build impressive projects to showcase skills"
)

// buildPhases assigns each missing skill to a learning phase using a
// three-bucket single-pass classification over the dependency graph:
//
//   - no prerequisites               -> Foundation
//   - all prerequisites satisfied by
//     current skills or Foundation   -> Intermediate
//   - anything else                  -> Advanced
//
// Only two dependency levels are resolved (direct current skills or
// Foundation membership). Dependency chains longer than that are NOT
// followed transitively: if C needs B and B is itself still missing, C
// lands in Advanced even when B ends up in Foundation. That shallow
// behavior is deliberate; roadmap outputs depend on it.
//
// Empty skill phases are omitted and phase numbers are renumbered
// contiguously from 1. The portfolio phase is appended unconditionally.
func (p *Planner) buildPhases(missing, current []string) []types.LearningPhase {
	currentSet := types.NewSkillSet(current)

	var foundation, intermediate, advanced []string
	foundationSet := make(types.SkillSet)

	for _, skill := range missing {
		deps := p.catalog.Prerequisites(skill)

		switch {
		case len(deps) == 0:
			foundation = append(foundation, skill)
			foundationSet[skill] = true
		case allSatisfied(deps, currentSet, foundationSet):
			intermediate = append(intermediate, skill)
		default:
			advanced = append(advanced, skill)
		}
	}

	var phases []types.LearningPhase
	appendPhase := func(title, duration, focus string, skills []string) {
		if len(skills) == 0 {
			return
		}
		phases = append(phases, types.LearningPhase{
			Phase:    len(phases) + 1,
			Title:    title,
			Duration: duration,
			Skills:   skills,
			Focus:    focus,
		})
	}

	appendPhase(foundationTitle, foundationDuration, foundationFocus, foundation)
	appendPhase(intermediateTitle, intermediateDuration, intermediateFocus, intermediate)
	appendPhase(advancedTitle, advancedDuration, advancedFocus, advanced)

	phases = append(phases, types.LearningPhase{
		Phase:    len(phases) + 1,
		Title:    portfolioTitle,
		Duration: portfolioDuration,
		Skills:   []string{"portfolio building", "real-world projects"},
		Focus:    portfolioFocus,
	})

	return phases
}

func allSatisfied(deps []string, currentSet, foundationSet types.SkillSet) bool {
	for _, dep := range deps {
		if !currentSet[dep] && !foundationSet[dep] {
			return false
		}
	}
	return true
}
