package match

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/catalog"
	"github.com/covermatch/covermatch/internal/similarity"
	"github.com/covermatch/covermatch/internal/textproc"
)

// EmptyInputNote marks reports produced from empty input.
const EmptyInputNote = "empty input: a cover letter and a job description are required for scoring"

// Scorer produces MatchReports. It holds only read-only state (catalog,
// engine weights), so one scorer may be shared across goroutines.
type Scorer struct {
	catalog *catalog.Catalog
	engine  *similarity.Engine
	logger  *zap.Logger
}

// NewScorer builds a scorer over the shared catalog with the given blend
// weights.
func NewScorer(cat *catalog.Catalog, weights similarity.Weights, logger *zap.Logger) (*Scorer, error) {
	engine, err := similarity.NewEngine(cat, weights)
	if err != nil {
		return nil, fmt.Errorf("building similarity engine: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{catalog: cat, engine: engine, logger: logger}, nil
}

// Score evaluates how well the letter fits the job description. The optional
// resume text only contributes to experience-level classification. Identical
// inputs always yield identical reports.
func (s *Scorer) Score(letter, job, resume string) *Report {
	if strings.TrimSpace(letter) == "" || strings.TrimSpace(job) == "" {
		s.logger.Debug("scoring skipped", zap.String("reason", "empty input"))
		return emptyReport()
	}

	content := clamp01(s.engine.Combined(letter, job))
	skills := s.scoreSkillAlignment(letter, job)
	tone := scoreTone(letter, job)
	length := scoreLength(textproc.WordCount(letter))
	keywords := s.scoreKeywordCoverage(letter, job)
	experience := scoreLevelMatch(classifyLevel(job), classifyLevel(letter+" "+resume))

	overall := WeightContent*content +
		WeightSkills*skills +
		WeightTone*tone +
		WeightLength*length +
		WeightKeywords*keywords +
		WeightExperience*experience

	report := &Report{
		OverallScore:          round3(clamp01(overall)),
		ContentSimilarity:     round3(content),
		SkillAlignment:        round3(skills),
		ToneAppropriateness:   round3(tone),
		LengthAppropriateness: round3(length),
		KeywordCoverage:       round3(keywords),
		ExperienceLevelMatch:  round3(experience),
	}
	report.DetailedAnalysis = s.buildAnalysis(report, letter, job)

	s.logger.Debug("match scored",
		zap.Float64("overall_score", report.OverallScore),
		zap.Float64("content_similarity", report.ContentSimilarity),
		zap.Float64("skill_alignment", report.SkillAlignment),
	)

	return report
}

// scoreSkillAlignment is the fraction of the job's recognized skills that
// also appear in the letter; 0 when the job mentions none.
func (s *Scorer) scoreSkillAlignment(letter, job string) float64 {
	required := s.catalog.FindIn(job, -1)
	if len(required) == 0 {
		return 0
	}
	present := make(map[string]struct{})
	for _, skill := range s.catalog.FindIn(letter, -1) {
		present[skill] = struct{}{}
	}
	matched := 0
	for _, skill := range required {
		if _, ok := present[skill]; ok {
			matched++
		}
	}
	return clamp01(float64(matched) / float64(len(required)))
}

// scoreKeywordCoverage is the fraction of the job's important words (longer
// than three characters, not stopwords) occurring verbatim in the letter.
func (s *Scorer) scoreKeywordCoverage(letter, job string) float64 {
	letterTokens := make(map[string]struct{})
	for _, tok := range textproc.Tokens(letter) {
		letterTokens[tok] = struct{}{}
	}

	seen := make(map[string]struct{})
	total, covered := 0, 0
	for _, tok := range textproc.Tokens(job) {
		if len(tok) <= 3 || textproc.IsStopword(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		total++
		if _, ok := letterTokens[tok]; ok {
			covered++
		}
	}
	if total == 0 {
		return 0
	}
	return clamp01(float64(covered) / float64(total))
}

// missingSkills lists the job's recognized skills absent from the letter,
// in catalog order.
func (s *Scorer) missingSkills(letter, job string) []string {
	present := make(map[string]struct{})
	for _, skill := range s.catalog.FindIn(letter, -1) {
		present[skill] = struct{}{}
	}
	var missing []string
	for _, skill := range s.catalog.FindIn(job, -1) {
		if _, ok := present[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	return missing
}

func emptyReport() *Report {
	return &Report{
		DetailedAnalysis: Analysis{
			Weaknesses:       []string{EmptyInputNote},
			Recommendations:  []string{"provide both a cover letter and a job description"},
			MetricsBreakdown: map[string]string{},
		},
	}
}
