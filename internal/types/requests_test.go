package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileInput_Validate(t *testing.T) {
	valid := ProfileInput{
		Education:       "BS Computer Science",
		Skills:          []string{"python", "sql"},
		Interests:       []string{"web development"},
		ExperienceYears: 3,
	}
	assert.NoError(t, valid.Validate())
}

func TestProfileInput_Validate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input ProfileInput
	}{
		{
			name:  "missing education",
			input: ProfileInput{Skills: []string{"python"}},
		},
		{
			name:  "no skills",
			input: ProfileInput{Education: "BS", Skills: []string{}},
		},
		{
			name:  "empty skill entry",
			input: ProfileInput{Education: "BS", Skills: []string{"python", ""}},
		},
		{
			name:  "negative experience",
			input: ProfileInput{Education: "BS", Skills: []string{"python"}, ExperienceYears: -1},
		},
		{
			name:  "implausible experience",
			input: ProfileInput{Education: "BS", Skills: []string{"python"}, ExperienceYears: 60},
		},
		{
			name:  "education too long",
			input: ProfileInput{Education: strings.Repeat("x", 501), Skills: []string{"python"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.input.Validate())
		})
	}
}

func TestProfileInput_Validate_TooManySkills(t *testing.T) {
	skills := make([]string, 51)
	for i := range skills {
		skills[i] = "skill"
	}
	input := ProfileInput{Education: "BS", Skills: skills}

	assert.Error(t, input.Validate())
}

func TestGapRequest_Validate(t *testing.T) {
	assert.NoError(t, (&GapRequest{Skills: []string{"python"}}).Validate())
	assert.Error(t, (&GapRequest{}).Validate())
	assert.Error(t, (&GapRequest{Skills: []string{}}).Validate())
}

func TestRoadmapRequest_Validate(t *testing.T) {
	valid := RoadmapRequest{
		CareerPath:    "Data Scientist",
		MissingSkills: []string{"pandas"},
	}
	assert.NoError(t, valid.Validate())

	// Current skills are optional but entries must be non-empty.
	valid.CurrentSkills = []string{"python"}
	assert.NoError(t, valid.Validate())
	valid.CurrentSkills = []string{""}
	assert.Error(t, valid.Validate())

	assert.Error(t, (&RoadmapRequest{MissingSkills: []string{"pandas"}}).Validate())
	assert.Error(t, (&RoadmapRequest{CareerPath: "Data Scientist"}).Validate())
}

func TestTextAnalysisRequest_Validate(t *testing.T) {
	long := &TextAnalysisRequest{Text: "I have experience with python and react development."}
	assert.NoError(t, long.Validate())

	short := &TextAnalysisRequest{Text: "python"}
	assert.Error(t, short.Validate())

	assert.Error(t, (&TextAnalysisRequest{}).Validate())
}
