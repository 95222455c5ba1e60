package match

import (
	"fmt"
	"strings"

	"github.com/covermatch/covermatch/internal/textproc"
)

// buildAnalysis derives the qualitative feedback strictly from the six
// sub-scores of the report; there is no hidden state.
func (s *Scorer) buildAnalysis(r *Report, letter, job string) Analysis {
	a := Analysis{
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
		MetricsBreakdown: map[string]string{
			"content_similarity":     percent(r.ContentSimilarity),
			"skill_alignment":        percent(r.SkillAlignment),
			"tone_appropriateness":   percent(r.ToneAppropriateness),
			"length_appropriateness": percent(r.LengthAppropriateness),
			"keyword_coverage":       percent(r.KeywordCoverage),
			"experience_level_match": percent(r.ExperienceLevelMatch),
		},
	}

	if r.ContentSimilarity > 0.7 {
		a.Strengths = append(a.Strengths, "letter content closely mirrors the job description")
	} else if r.ContentSimilarity < 0.3 {
		a.Weaknesses = append(a.Weaknesses, "letter content has little overlap with the job description")
		a.Recommendations = append(a.Recommendations, "rework the letter around the responsibilities listed in the posting")
	}

	if r.SkillAlignment > 0.8 {
		a.Strengths = append(a.Strengths, "nearly all required skills are mentioned")
	} else if r.SkillAlignment < 0.5 {
		a.Weaknesses = append(a.Weaknesses, "several required skills are not mentioned")
	}
	if missing := s.missingSkills(letter, job); len(missing) > 0 {
		a.Recommendations = append(a.Recommendations,
			fmt.Sprintf("consider mentioning: %s", strings.Join(missing, ", ")))
	}

	if r.ToneAppropriateness > 0.7 {
		a.Strengths = append(a.Strengths, "tone matches the posting")
	} else if r.ToneAppropriateness < 0.4 {
		a.Weaknesses = append(a.Weaknesses, "tone does not match the posting")
	}

	words := textproc.WordCount(letter)
	if r.LengthAppropriateness == 1.0 {
		a.Strengths = append(a.Strengths, "letter length is in the ideal range")
	} else if words < 200 {
		a.Weaknesses = append(a.Weaknesses, fmt.Sprintf("letter is short (%d words)", words))
		a.Recommendations = append(a.Recommendations, "expand the letter towards 200-500 words")
	} else if words > 500 {
		a.Weaknesses = append(a.Weaknesses, fmt.Sprintf("letter is long (%d words)", words))
		a.Recommendations = append(a.Recommendations, "tighten the letter towards 200-500 words")
	}

	if r.KeywordCoverage > 0.7 {
		a.Strengths = append(a.Strengths, "strong coverage of the posting's keywords")
	} else if r.KeywordCoverage < 0.3 {
		a.Weaknesses = append(a.Weaknesses, "few of the posting's keywords appear in the letter")
		a.Recommendations = append(a.Recommendations, "reuse the posting's own vocabulary where it is accurate")
	}

	if r.ExperienceLevelMatch == 1.0 {
		a.Strengths = append(a.Strengths, "experience level matches the role")
	} else if r.ExperienceLevelMatch < 0.5 {
		a.Weaknesses = append(a.Weaknesses, "stated experience level diverges from the role")
	}

	return a
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
