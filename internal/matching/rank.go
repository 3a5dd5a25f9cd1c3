package matching

import (
	"sort"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// Weights control the blend of the three similarity signals that make up
// a career's confidence score. They are a design constant exposed as
// configuration so tests and deployments can vary them.
type Weights struct {
	Jaccard  float64
	Cosine   float64
	MatchPct float64
}

// DefaultWeights returns the reference blend: 0.3 Jaccard, 0.4 cosine,
// 0.3 match percentage.
func DefaultWeights() Weights {
	return Weights{Jaccard: 0.3, Cosine: 0.4, MatchPct: 0.3}
}

// Ranker scores user skill sets against the career catalog. It is
// stateless beyond its immutable configuration and safe for concurrent use.
type Ranker struct {
	catalog *catalog.Catalog
	weights Weights
}

// NewRanker creates a Ranker over the given catalog with the given weights.
func NewRanker(cat *catalog.Catalog, weights Weights) *Ranker {
	return &Ranker{catalog: cat, weights: weights}
}

// RankCareers scores every career in the catalog against the user's
// skills and returns the topK highest-confidence results. The sort is
// stable: ties keep catalog insertion order. When the catalog holds fewer
// than topK careers, all of them are returned.
func (r *Ranker) RankCareers(userSkills []string, topK int) []types.CareerScore {
	normalized := types.NormalizeSkills(userSkills)
	userSet := types.NewSkillSet(normalized)

	scores := make([]types.CareerScore, 0, len(r.catalog.Careers()))
	for _, career := range r.catalog.Careers() {
		scores = append(scores, r.scoreCareer(normalized, userSet, &career))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Confidence > scores[j].Confidence
	})

	if topK >= 0 && topK < len(scores) {
		scores = scores[:topK]
	}

	return scores
}

// scoreCareer computes the composite confidence for one career.
func (r *Ranker) scoreCareer(userSkills []string, userSet types.SkillSet, career *types.CareerProfile) types.CareerScore {
	requiredSet := types.NewSkillSet(career.RequiredSkills)

	jaccard := computeJaccardScore(userSet, requiredSet)
	cosine := computeCosineScore(userSkills, career.RequiredSkills)
	matchPct := computeMatchPercentage(userSet, requiredSet)

	confidence := r.weights.Jaccard*jaccard +
		r.weights.Cosine*cosine +
		r.weights.MatchPct*(matchPct/100)

	matched := make(types.SkillSet)
	missing := make(types.SkillSet)
	for skill := range requiredSet {
		if userSet[skill] {
			matched[skill] = true
		} else {
			missing[skill] = true
		}
	}

	return types.CareerScore{
		CareerTitle:     career.Title,
		Confidence:      round3(confidence),
		Description:     career.Description,
		AverageSalary:   career.AverageSalary,
		GrowthRate:      career.GrowthRate,
		RequiredSkills:  career.RequiredSkills,
		MatchPercentage: round1(matchPct),
		MatchedSkills:   matched.Sorted(),
		MissingSkills:   missing.Sorted(),
	}
}
