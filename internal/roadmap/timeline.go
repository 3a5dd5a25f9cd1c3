package roadmap

// estimateTimeline buckets the total learning time from the number of
// missing skills: roughly 3 weeks per skill, floored to whole months.
// numPhases is part of the estimator's signature but does not influence
// the buckets; it is kept for callers that pass it.
func estimateTimeline(numSkills, numPhases int) string {
	_ = numPhases

	weeks := numSkills * 3
	months := weeks / 4

	switch {
	case months <= 3:
		return "2-3 months"
	case months <= 6:
		return "4-6 months"
	case months <= 9:
		return "6-9 months"
	default:
		return "9-12 months"
	}
}
