// Package catalog provides the immutable career, skill, resource and
// dependency catalogs consumed by the matching and roadmap engines.
// Catalogs are constructed once at process start, either from the built-in
// defaults or from JSON catalog files, and are safe for concurrent reads.
package catalog

import (
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
)

// SkillResources holds the learning material known for one skill.
type SkillResources struct {
	Courses  []types.LearningResource `json:"courses"`
	Projects []types.Project          `json:"projects"`
}

// Data is the serializable form of a catalog. It is what catalog JSON
// files contain; see schemas/catalog.schema.json for the file contract.
type Data struct {
	Careers        []types.CareerProfile            `json:"careers"`
	SkillGroups    map[string][]string              `json:"skill_groups"`
	Resources      map[string]SkillResources        `json:"resources"`
	Certifications map[string][]types.Certification `json:"certifications"`
	Tools          map[string][]string              `json:"tools"`
	Dependencies   map[string][]string              `json:"dependencies"`
	RelatedSkills  map[string][]string              `json:"related_skills"`
}

// Catalog is an immutable view over catalog data with normalized skill
// tokens and title lookups. Career insertion order is preserved so that
// ranking tie-breaks stay deterministic.
type Catalog struct {
	careers        []types.CareerProfile
	careerIndex    map[string]int
	skillGroups    map[string][]string
	resources      map[string]SkillResources
	certifications map[string][]types.Certification
	tools          map[string][]string
	dependencies   map[string][]string
	related        map[string][]string
}

// New builds a Catalog from catalog data. Skill tokens are normalized
// everywhere; career titles must be unique.
func New(data *Data) (*Catalog, error) {
	if len(data.Careers) == 0 {
		return nil, fmt.Errorf("catalog has no careers")
	}

	c := &Catalog{
		careers:        make([]types.CareerProfile, 0, len(data.Careers)),
		careerIndex:    make(map[string]int, len(data.Careers)),
		skillGroups:    normalizeGroups(data.SkillGroups),
		resources:      make(map[string]SkillResources, len(data.Resources)),
		certifications: make(map[string][]types.Certification, len(data.Certifications)),
		tools:          make(map[string][]string, len(data.Tools)),
		dependencies:   make(map[string][]string, len(data.Dependencies)),
		related:        make(map[string][]string, len(data.RelatedSkills)),
	}

	for _, career := range data.Careers {
		if career.Title == "" {
			return nil, fmt.Errorf("catalog career with empty title")
		}
		if _, exists := c.careerIndex[career.Title]; exists {
			return nil, fmt.Errorf("duplicate career title: %s", career.Title)
		}
		normalized := career
		normalized.RequiredSkills = types.NormalizeSkills(career.RequiredSkills)
		c.careerIndex[career.Title] = len(c.careers)
		c.careers = append(c.careers, normalized)
	}

	for skill, res := range data.Resources {
		c.resources[types.NormalizeSkill(skill)] = res
	}
	for title, certs := range data.Certifications {
		c.certifications[title] = certs
	}
	for skill, tools := range data.Tools {
		c.tools[types.NormalizeSkill(skill)] = tools
	}
	for skill, deps := range data.Dependencies {
		c.dependencies[types.NormalizeSkill(skill)] = types.NormalizeSkills(deps)
	}
	for skill, rel := range data.RelatedSkills {
		c.related[types.NormalizeSkill(skill)] = types.NormalizeSkills(rel)
	}

	return c, nil
}

func normalizeGroups(groups map[string][]string) map[string][]string {
	normalized := make(map[string][]string, len(groups))
	for category, skills := range groups {
		normalized[category] = types.NormalizeSkills(skills)
	}
	return normalized
}

// Careers returns all career profiles in catalog insertion order.
func (c *Catalog) Careers() []types.CareerProfile {
	return c.careers
}

// Career looks up a career profile by its exact title.
func (c *Catalog) Career(title string) (*types.CareerProfile, bool) {
	idx, ok := c.careerIndex[title]
	if !ok {
		return nil, false
	}
	return &c.careers[idx], true
}

// Titles returns all career titles in catalog insertion order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.careers))
	for i, career := range c.careers {
		titles[i] = career.Title
	}
	return titles
}

// SkillGroups returns the category -> skills mapping.
func (c *Catalog) SkillGroups() map[string][]string {
	return c.skillGroups
}

// AllSkills returns the union of every skill in every category.
func (c *Catalog) AllSkills() types.SkillSet {
	all := make(types.SkillSet)
	for _, skills := range c.skillGroups {
		for _, skill := range skills {
			all[skill] = true
		}
	}
	return all
}

// ResourcesFor returns the learning resources for a skill, or an empty
// SkillResources when none are cataloged (not an error).
func (c *Catalog) ResourcesFor(skill string) SkillResources {
	return c.resources[types.NormalizeSkill(skill)]
}

// CertificationsFor returns the certifications recommended for a career
// title. Careers without certifications yield an empty list.
func (c *Catalog) CertificationsFor(title string) []types.Certification {
	return c.certifications[title]
}

// ToolsFor returns the tools associated with a skill, if any.
func (c *Catalog) ToolsFor(skill string) []string {
	return c.tools[types.NormalizeSkill(skill)]
}

// Prerequisites returns the direct prerequisite skills for a skill.
// Skills absent from the dependency graph have no prerequisites.
func (c *Catalog) Prerequisites(skill string) []string {
	return c.dependencies[types.NormalizeSkill(skill)]
}

// RelatedSkills returns skills commonly learned alongside the given skill.
func (c *Catalog) RelatedSkills(skill string) []string {
	return c.related[types.NormalizeSkill(skill)]
}
