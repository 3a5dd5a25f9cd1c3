package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/catalog"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(catalog.Default())
}

func TestExtractFromText_FindsVocabularySkills(t *testing.T) {
	e := newTestExtractor(t)

	result := e.ExtractFromText("Built web apps with Python and React, backed by PostgreSQL.")

	assert.Contains(t, result.Skills, "python")
	assert.Contains(t, result.Skills, "react")
	assert.Contains(t, result.Skills, "postgresql")
	assert.Equal(t, len(result.Skills), result.TotalSkillsFound)
}

func TestExtractFromText_CaseInsensitive(t *testing.T) {
	e := newTestExtractor(t)

	result := e.ExtractFromText("DOCKER and Kubernetes in production")

	assert.Contains(t, result.Skills, "docker")
	assert.Contains(t, result.Skills, "kubernetes")
}

func TestExtractFromText_WordBoundaries(t *testing.T) {
	e := newTestExtractor(t)

	// "javascript" contains "java" but only as a substring, not a word.
	result := e.ExtractFromText("I write javascript every day")

	assert.Contains(t, result.Skills, "javascript")
	assert.NotContains(t, result.Skills, "java")
}

func TestExtractFromText_MultiWordSkills(t *testing.T) {
	e := newTestExtractor(t)

	result := e.ExtractFromText("Focused on machine learning and data analysis projects")

	assert.Contains(t, result.Skills, "machine learning")
	assert.Contains(t, result.Skills, "data analysis")
}

func TestExtractFromText_PhrasePatternRequiresVocabularySkill(t *testing.T) {
	e := newTestExtractor(t)

	// "experience with sql" names a cataloged skill; the cooking phrase
	// does not, so the capture is discarded.
	result := e.ExtractFromText("experience with sql and experience with sourdough baking")

	assert.Contains(t, result.Skills, "sql")
	assert.NotContains(t, result.Skills, "sourdough baking")
}

func TestExtractFromText_Categories(t *testing.T) {
	e := newTestExtractor(t)

	result := e.ExtractFromText("python and react and mongodb")

	assert.Contains(t, result.Categories["programming"], "python")
	assert.Contains(t, result.Categories["web_development"], "react")
	assert.Contains(t, result.Categories["database"], "mongodb")
}

func TestExtractFromText_SkillsSorted(t *testing.T) {
	e := newTestExtractor(t)

	result := e.ExtractFromText("sql then python then docker")

	assert.Equal(t, []string{"docker", "python", "sql"}, result.Skills)
}

func TestExtractFromText_NoSkills(t *testing.T) {
	e := newTestExtractor(t)

	result := e.ExtractFromText("I enjoy hiking and cooking on weekends.")

	assert.Empty(t, result.Skills)
	assert.Zero(t, result.TotalSkillsFound)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
}

func TestExtractFromText_ConfidenceDensity(t *testing.T) {
	e := newTestExtractor(t)

	// One unique skill in three words is well past the cap.
	dense := e.ExtractFromText("python python python")
	assert.InDelta(t, 0.95, dense.Confidence, 1e-9)

	// One skill in twenty words: 0.5 + 0.05*10 = 1.0, capped at 0.95.
	sparse := e.ExtractFromText("python " + strings.Repeat("filler ", 19))
	assert.InDelta(t, 0.95, sparse.Confidence, 1e-9)

	// One skill in fifty words: 0.5 + 0.02*10 = 0.7.
	diluted := e.ExtractFromText("python " + strings.Repeat("filler ", 49))
	assert.InDelta(t, 0.7, diluted.Confidence, 1e-9)
}

func TestExtractFromText_EmptyText(t *testing.T) {
	e := newTestExtractor(t)

	result := e.ExtractFromText("")

	assert.Empty(t, result.Skills)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
}

func TestEnhanceWithRelated_AddsUpToTwoPerSkill(t *testing.T) {
	e := newTestExtractor(t)

	// python relates to django, flask, fastapi, ...; only the first two
	// are added.
	enhanced := e.EnhanceWithRelated([]string{"python"})

	assert.Equal(t, []string{"python", "django", "flask"}, enhanced)
}

func TestEnhanceWithRelated_PreservesInputOrder(t *testing.T) {
	e := newTestExtractor(t)

	enhanced := e.EnhanceWithRelated([]string{"sql", "python"})

	require.GreaterOrEqual(t, len(enhanced), 2)
	assert.Equal(t, "sql", enhanced[0])
	assert.Equal(t, "python", enhanced[1])
}

func TestEnhanceWithRelated_NoDuplicates(t *testing.T) {
	e := newTestExtractor(t)

	// django is already present, so only flask is newly added for python.
	enhanced := e.EnhanceWithRelated([]string{"python", "django"})

	assert.Equal(t, []string{"python", "django", "flask"}, enhanced)
}

func TestEnhanceWithRelated_UnrelatedSkillUnchanged(t *testing.T) {
	e := newTestExtractor(t)

	enhanced := e.EnhanceWithRelated([]string{"sql"})

	assert.Equal(t, []string{"sql"}, enhanced)
}

func TestEnhanceWithRelated_NormalizesInput(t *testing.T) {
	e := newTestExtractor(t)

	enhanced := e.EnhanceWithRelated([]string{"  Python  "})

	assert.Equal(t, []string{"python", "django", "flask"}, enhanced)
}
