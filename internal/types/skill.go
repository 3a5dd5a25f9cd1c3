// Package types provides type definitions for structured data used throughout the career-compass system.
package types

import (
	"sort"
	"strings"
)

// NormalizeSkill converts a raw skill token to its canonical form:
// lower-cased and trimmed. Identity between skills is exact string
// equality after normalization.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSkills normalizes a list of skill tokens, dropping entries
// that are empty after normalization. Order is preserved and duplicates
// are removed (first occurrence wins).
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		s := NormalizeSkill(skill)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		normalized = append(normalized, s)
	}
	return normalized
}

// SkillSet is a set of normalized skill tokens.
type SkillSet map[string]bool

// NewSkillSet builds a SkillSet from raw skill tokens.
func NewSkillSet(skills []string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, skill := range skills {
		s := NormalizeSkill(skill)
		if s != "" {
			set[s] = true
		}
	}
	return set
}

// Contains reports whether the set contains the given skill after normalization.
func (s SkillSet) Contains(skill string) bool {
	return s[NormalizeSkill(skill)]
}

// Sorted returns the set members as a sorted slice for deterministic output.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
