package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/catalog"
)

func TestBuild_FullRoadmap(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	rm := planner.Build("Full Stack Developer",
		[]string{"javascript", "react", "node.js", "mongodb"},
		[]string{"python", "sql", "html"})

	assert.Equal(t, "Full Stack Developer", rm.CareerPath)
	assert.Equal(t, []string{"javascript", "react", "node.js", "mongodb"}, rm.SkillsToLearn)
	require.NotEmpty(t, rm.Phases)
	assert.Equal(t, "Portfolio Projects", rm.Phases[len(rm.Phases)-1].Title)

	// javascript and react have cataloged resources; both courses and
	// projects come back capped at two per skill.
	assert.NotEmpty(t, rm.Resources)
	assert.NotEmpty(t, rm.Projects)
	assert.LessOrEqual(t, len(rm.Projects), 5)
	assert.LessOrEqual(t, len(rm.Resources), 8)

	// Certifications are looked up by career title.
	require.NotEmpty(t, rm.Certifications)
	assert.Equal(t, "AWS Certified Developer - Associate", rm.Certifications[0].Name)
}

func TestBuild_ResourceTruncation(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	// Five skills with cataloged resources would yield 10 courses and 10
	// projects before truncation.
	rm := planner.Build("Data Scientist",
		[]string{"python", "javascript", "react", "machine learning", "python"},
		nil)

	assert.Len(t, rm.Resources, 8)
	assert.Len(t, rm.Projects, 5)
}

func TestBuild_ResourceOrderFollowsInput(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	rm := planner.Build("Data Scientist", []string{"machine learning", "python"}, nil)

	require.GreaterOrEqual(t, len(rm.Resources), 3)
	// machine learning resources come first because it was listed first.
	assert.Equal(t, "Machine Learning Specialization", rm.Resources[0].Title)
	assert.Equal(t, "Python for Everybody", rm.Resources[2].Title)
}

func TestBuild_ToolsUnioned(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	// python and javascript both list VS Code; the union holds it once.
	rm := planner.Build("Full Stack Developer", []string{"python", "javascript"}, nil)

	count := 0
	for _, tool := range rm.Tools {
		if tool == "VS Code" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, rm.Tools, "PyCharm")
	assert.Contains(t, rm.Tools, "Chrome DevTools")
}

func TestBuild_NoCertificationsForCareer(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	// QA Engineer has no cataloged certifications; that is not an error.
	rm := planner.Build("QA Engineer", []string{"selenium"}, nil)

	assert.NotNil(t, rm.Certifications)
	assert.Empty(t, rm.Certifications)
}

func TestBuild_UnknownSkillsYieldEmptyResources(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	rm := planner.Build("Cloud Architect", []string{"cloud architecture", "networking"}, nil)

	assert.Empty(t, rm.Resources)
	assert.Empty(t, rm.Projects)
	assert.Empty(t, rm.Tools)
}

func TestBuild_EchoesCareerPathWithoutCatalogLookup(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	// The planner echoes the title; catalog validation is the caller's
	// responsibility.
	rm := planner.Build("Not A Real Career", []string{"python"}, nil)

	assert.Equal(t, "Not A Real Career", rm.CareerPath)
	assert.Empty(t, rm.Certifications)
}

func TestBuild_MissingSkillsPartitionAcrossPhases(t *testing.T) {
	planner := NewPlanner(catalog.Default())
	missing := []string{"react", "node.js", "docker"}

	rm := planner.Build("Full Stack Developer", missing, []string{"python", "sql"})

	var placed []string
	for _, phase := range rm.Phases {
		if phase.Title == "Portfolio Projects" {
			continue
		}
		placed = append(placed, phase.Skills...)
	}
	assert.ElementsMatch(t, missing, placed)
}

func TestEstimateTimeline_Buckets(t *testing.T) {
	tests := []struct {
		name      string
		numSkills int
		want      string
	}{
		{"three skills is nine weeks, two months", 3, "2-3 months"},
		{"zero skills", 0, "2-3 months"},
		{"five skills", 5, "2-3 months"},
		{"six skills", 6, "4-6 months"},
		{"eight skills", 8, "4-6 months"},
		{"ten skills", 10, "6-9 months"},
		{"twelve skills", 12, "6-9 months"},
		{"fourteen skills", 14, "9-12 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimateTimeline(tt.numSkills, 3))
		})
	}
}

func TestEstimateTimeline_PhaseCountIgnored(t *testing.T) {
	assert.Equal(t, estimateTimeline(3, 1), estimateTimeline(3, 99))
}

func TestBuild_Deterministic(t *testing.T) {
	planner := NewPlanner(catalog.Default())

	first := planner.Build("Data Scientist", []string{"pandas", "numpy", "python"}, []string{"sql"})
	second := planner.Build("Data Scientist", []string{"pandas", "numpy", "python"}, []string{"sql"})

	assert.Equal(t, first, second)
}
