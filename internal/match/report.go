// Package match combines content similarity, skill alignment, tone, length,
// keyword coverage and experience-level fit into one composite score with
// qualitative feedback. Scoring is purely functional over its string inputs
// and never fails: empty input degrades to an all-zero report with an
// explanatory note.
package match

import "math"

// Sub-score weights of the overall score. They form a convex combination:
// the six weights sum to 1.0.
const (
	WeightContent    = 0.30
	WeightSkills     = 0.25
	WeightTone       = 0.15
	WeightLength     = 0.10
	WeightKeywords   = 0.15
	WeightExperience = 0.05
)

// Analysis carries the qualitative feedback derived from the six sub-scores.
type Analysis struct {
	Strengths        []string          `json:"strengths"`
	Weaknesses       []string          `json:"weaknesses"`
	Recommendations  []string          `json:"recommendations"`
	MetricsBreakdown map[string]string `json:"metrics_breakdown"`
}

// Report is the structured output of a scoring call. Every score is in [0,1]
// and rounded to three decimal places; the overall score is always the fixed
// weighted sum of the six sub-scores.
type Report struct {
	OverallScore          float64  `json:"overall_score"`
	ContentSimilarity     float64  `json:"content_similarity"`
	SkillAlignment        float64  `json:"skill_alignment"`
	ToneAppropriateness   float64  `json:"tone_appropriateness"`
	LengthAppropriateness float64  `json:"length_appropriateness"`
	KeywordCoverage       float64  `json:"keyword_coverage"`
	ExperienceLevelMatch  float64  `json:"experience_level_match"`
	DetailedAnalysis      Analysis `json:"detailed_analysis"`
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}
