// Package roadmap builds phased learning plans for closing a skill gap.
package roadmap

import (
	"sort"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// Result list bounds applied after aggregating resources across skills.
const (
	maxCoursesPerSkill  = 2
	maxProjectsPerSkill = 2
	maxProjects         = 5
	maxResources        = 8
)

// Planner assembles learning roadmaps from the catalog's resource,
// certification, tool and dependency data. It is stateless beyond the
// immutable catalog and safe for concurrent use.
type Planner struct {
	catalog *catalog.Catalog
}

// NewPlanner creates a Planner over the given catalog.
func NewPlanner(cat *catalog.Catalog) *Planner {
	return &Planner{catalog: cat}
}

// Build creates a roadmap toward careerPath from the skills still missing
// and the skills already held. The career title is echoed back as given;
// callers validate it against the catalog before invoking the planner.
func (p *Planner) Build(careerPath string, missingSkills, currentSkills []string) *types.Roadmap {
	missing := types.NormalizeSkills(missingSkills)
	current := types.NormalizeSkills(currentSkills)

	phases := p.buildPhases(missing, current)

	var resources []types.LearningResource
	var projects []types.Project
	toolSet := make(map[string]bool)

	// Aggregate in input order so truncation keeps the caller's priorities.
	for _, skill := range missing {
		res := p.catalog.ResourcesFor(skill)
		resources = append(resources, limitCourses(res.Courses)...)
		projects = append(projects, limitProjects(res.Projects)...)

		for _, tool := range p.catalog.ToolsFor(skill) {
			toolSet[tool] = true
		}
	}

	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}
	if len(resources) > maxResources {
		resources = resources[:maxResources]
	}

	tools := make([]string, 0, len(toolSet))
	for tool := range toolSet {
		tools = append(tools, tool)
	}
	sort.Strings(tools)

	return &types.Roadmap{
		CareerPath:     careerPath,
		Timeline:       estimateTimeline(len(missing), len(phases)),
		Phases:         phases,
		SkillsToLearn:  missing,
		Tools:          tools,
		Projects:       nonNil(projects),
		Certifications: certsOrEmpty(p.catalog.CertificationsFor(careerPath)),
		Resources:      resourcesOrEmpty(resources),
	}
}

func limitCourses(courses []types.LearningResource) []types.LearningResource {
	if len(courses) > maxCoursesPerSkill {
		return courses[:maxCoursesPerSkill]
	}
	return courses
}

func limitProjects(projects []types.Project) []types.Project {
	if len(projects) > maxProjectsPerSkill {
		return projects[:maxProjectsPerSkill]
	}
	return projects
}

func nonNil(projects []types.Project) []types.Project {
	if projects == nil {
		return []types.Project{}
	}
	return projects
}

func certsOrEmpty(certs []types.Certification) []types.Certification {
	if certs == nil {
		return []types.Certification{}
	}
	return certs
}

func resourcesOrEmpty(resources []types.LearningResource) []types.LearningResource {
	if resources == nil {
		return []types.LearningResource{}
	}
	return resources
}
