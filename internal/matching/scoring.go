// Package matching provides the skill-to-career matching and scoring engine.
package matching

import (
	"math"
	"strings"
)

// computeJaccardScore calculates the Jaccard overlap between the user's
// skill set and a career's required skill set: intersection size over union
// size. Returns 0 when the union is empty.
func computeJaccardScore(userSet, requiredSet map[string]bool) float64 {
	intersection := 0
	for skill := range userSet {
		if requiredSet[skill] {
			intersection++
		}
	}

	union := len(userSet) + len(requiredSet) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// computeMatchPercentage calculates the fraction of required skills the
// user already has, as a percentage. Returns 0 when nothing is required.
func computeMatchPercentage(userSet, requiredSet map[string]bool) float64 {
	if len(requiredSet) == 0 {
		return 0.0
	}

	matches := 0
	for skill := range requiredSet {
		if userSet[skill] {
			matches++
		}
	}

	return float64(matches) / float64(len(requiredSet)) * 100
}

// computeCosineScore calculates the TF-IDF cosine similarity between the
// user's skills and a career's required skills, each treated as a
// bag-of-words document. The corpus is only these two documents, so IDF
// degenerates to a function of whether a term is shared.
func computeCosineScore(userSkills, requiredSkills []string) float64 {
	userCounts := termCounts(userSkills)
	requiredCounts := termCounts(requiredSkills)
	if len(userCounts) == 0 || len(requiredCounts) == 0 {
		return 0.0
	}

	// Document frequency over the two-document corpus.
	df := make(map[string]int, len(userCounts)+len(requiredCounts))
	for term := range userCounts {
		df[term]++
	}
	for term := range requiredCounts {
		df[term]++
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1 with n = 2 documents.
	idf := func(term string) float64 {
		return math.Log(3.0/(1.0+float64(df[term]))) + 1.0
	}

	userVec := weightedVector(userCounts, idf)
	requiredVec := weightedVector(requiredCounts, idf)

	dot := 0.0
	for term, w := range userVec {
		dot += w * requiredVec[term]
	}

	return dot
}

// termCounts tokenizes a skill list into word-level term frequencies.
// Multi-word skills contribute one count per word, matching bag-of-words
// vectorization over the joined skill string. Splitting on whitespace keeps
// compound names like "node.js" and "c++" as single terms, unlike
// vectorizers that split on non-word characters and drop short tokens.
func termCounts(skills []string) map[string]float64 {
	counts := make(map[string]float64)
	for _, skill := range skills {
		for _, term := range strings.Fields(skill) {
			counts[term]++
		}
	}
	return counts
}

// weightedVector builds an L2-normalized tf-idf vector from term counts.
func weightedVector(counts map[string]float64, idf func(string) float64) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	norm := 0.0
	for term, tf := range counts {
		w := tf * idf(term)
		vec[term] = w
		norm += w * w
	}

	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}

	return vec
}

// round3 rounds to 3 decimal places (confidence precision).
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// round1 rounds to 1 decimal place (percentage precision).
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
