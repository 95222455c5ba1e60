package match

import (
	"fmt"
	"strings"

	"github.com/covermatch/covermatch/internal/extract"
)

// ResumeMatch reports resume-to-job compatibility. Unlike the letter report
// it lists the matched and missing skills explicitly and scores experience
// as a years ratio rather than level adjacency.
type ResumeMatch struct {
	OverallSimilarity float64  `json:"overall_similarity"`
	SkillMatch        float64  `json:"skill_match"`
	ExperienceMatch   float64  `json:"experience_match"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	ResumeSkills      []string `json:"resume_skills"`
	RequiredSkills    []string `json:"required_skills"`
}

// MatchResumeToJob compares a resume against a job description. Empty input
// degrades to a zeroed result, never an error.
func (s *Scorer) MatchResumeToJob(resume, job string) *ResumeMatch {
	result := &ResumeMatch{
		MatchedSkills:  []string{},
		MissingSkills:  []string{},
		ResumeSkills:   []string{},
		RequiredSkills: []string{},
	}
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(job) == "" {
		return result
	}

	result.RequiredSkills = s.catalog.FindIn(job, -1)
	result.ResumeSkills = s.catalog.FindIn(resume, -1)

	have := make(map[string]struct{}, len(result.ResumeSkills))
	for _, skill := range result.ResumeSkills {
		have[skill] = struct{}{}
	}
	for _, skill := range result.RequiredSkills {
		if _, ok := have[skill]; ok {
			result.MatchedSkills = append(result.MatchedSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}

	if len(result.RequiredSkills) > 0 {
		result.SkillMatch = round3(clamp01(
			float64(len(result.MatchedSkills)) / float64(len(result.RequiredSkills))))
	}

	result.ExperienceMatch = round3(experienceRatio(resume, job))
	result.OverallSimilarity = round3(clamp01(s.engine.Combined(resume, job)))

	return result
}

// experienceRatio is candidate years over required years, capped at 1.0.
// A job that states no requirement is treated as satisfied.
func experienceRatio(resume, job string) float64 {
	required, _ := extract.Years(job)
	if required == 0 {
		return 1.0
	}
	candidate, _ := extract.Years(resume)
	ratio := float64(candidate) / float64(required)
	if ratio > 1 {
		ratio = 1
	}
	return clamp01(ratio)
}

// RecommendImprovements suggests concrete resume edits for the target job,
// derived from the same skill and experience signals as MatchResumeToJob.
func (s *Scorer) RecommendImprovements(resume, job string) []string {
	recs := []string{}
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(job) == "" {
		return append(recs, "provide both a resume and a job description")
	}

	result := s.MatchResumeToJob(resume, job)
	if len(result.MissingSkills) > 0 {
		recs = append(recs, fmt.Sprintf("add experience with: %s", strings.Join(result.MissingSkills, ", ")))
	}
	if result.ExperienceMatch < 1.0 {
		required, _ := extract.Years(job)
		recs = append(recs, fmt.Sprintf("the role asks for %d years of experience; highlight the closest relevant work", required))
	}
	if result.OverallSimilarity < 0.3 {
		recs = append(recs, "mirror the posting's own wording for responsibilities you have held")
	}
	if len(recs) == 0 {
		recs = append(recs, "resume already covers the posting's stated requirements")
	}
	return recs
}
