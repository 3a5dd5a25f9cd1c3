// Package extraction implements fixed-vocabulary skill extraction from
// free text. Matching is word-boundary pattern matching over the skill
// catalog; there is no semantic or embedding-based interpretation.
package extraction

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// Confidence is 0.5 plus ten times the skill density of the text, capped.
const maxConfidence = 0.95

// skillPhrasePatterns match common ways people state a competency, e.g.
// "experience with docker" or "proficient in sql".
var skillPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`experience (?:with|in) ([\w\s.+#-]+)`),
	regexp.MustCompile(`proficient in ([\w\s.+#-]+)`),
	regexp.MustCompile(`skilled in ([\w\s.+#-]+)`),
	regexp.MustCompile(`knowledge of ([\w\s.+#-]+)`),
	regexp.MustCompile(`expertise in ([\w\s.+#-]+)`),
}

// Extractor matches catalog skills in raw text. It is built once at
// startup from the skill catalog and passed to callers explicitly; all
// compiled state is immutable afterwards, so it is safe for concurrent use.
type Extractor struct {
	catalog  *catalog.Catalog
	patterns map[string]*regexp.Regexp // skill -> word-boundary matcher
	category map[string][]string       // skill -> categories containing it
}

// NewExtractor compiles word-boundary matchers for every skill in the
// catalog's skill groups.
func NewExtractor(cat *catalog.Catalog) *Extractor {
	e := &Extractor{
		catalog:  cat,
		patterns: make(map[string]*regexp.Regexp),
		category: make(map[string][]string),
	}

	for group, skills := range cat.SkillGroups() {
		for _, skill := range skills {
			if _, ok := e.patterns[skill]; !ok {
				e.patterns[skill] = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
			}
			e.category[skill] = append(e.category[skill], group)
		}
	}

	return e
}

// ExtractFromText finds catalog skills in text. The returned skills are
// normalized tokens sorted for determinism, grouped by catalog category,
// with a density-based confidence estimate.
func (e *Extractor) ExtractFromText(text string) *types.SkillExtraction {
	textLower := strings.ToLower(text)

	found := make(types.SkillSet)

	// Direct word-boundary matching over the full vocabulary.
	for skill, pattern := range e.patterns {
		if pattern.MatchString(textLower) {
			found[skill] = true
		}
	}

	// Phrase patterns: "experience with X" etc. The captured phrase only
	// counts when it is itself a catalog skill.
	for _, pattern := range skillPhrasePatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			candidate := strings.TrimSpace(match[1])
			if _, ok := e.patterns[candidate]; ok {
				found[candidate] = true
			}
		}
	}

	categories := make(map[string][]string)
	for skill := range found {
		for _, cat := range e.category[skill] {
			categories[cat] = append(categories[cat], skill)
		}
	}
	for cat := range categories {
		sort.Strings(categories[cat])
	}

	skills := found.Sorted()

	return &types.SkillExtraction{
		Skills:           skills,
		Categories:       categories,
		Confidence:       confidence(text, len(skills)),
		TotalSkillsFound: len(skills),
	}
}

// EnhanceWithRelated augments a skill list with up to two related skills
// per base skill, as cataloged. Input order is preserved; additions follow.
func (e *Extractor) EnhanceWithRelated(skills []string) []string {
	enhanced := types.NormalizeSkills(skills)
	seen := types.NewSkillSet(enhanced)

	for _, skill := range types.NormalizeSkills(skills) {
		related := e.catalog.RelatedSkills(skill)
		if len(related) > 2 {
			related = related[:2]
		}
		for _, rel := range related {
			if !seen[rel] {
				seen[rel] = true
				enhanced = append(enhanced, rel)
			}
		}
	}

	return enhanced
}

// confidence estimates extraction confidence from skill density: texts
// where a larger share of words are recognized skills score higher.
func confidence(text string, skillsFound int) float64 {
	words := len(strings.Fields(text))
	if words < 1 {
		words = 1
	}

	density := float64(skillsFound) / float64(words)
	c := 0.5 + density*10
	if c > maxConfidence {
		c = maxConfidence
	}

	return math.Round(c*100) / 100
}
