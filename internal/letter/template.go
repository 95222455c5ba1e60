package letter

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/covermatch/covermatch/internal/extract"
)

// TemplateGenerator fills a per-level letter template with extracted fields.
// Template and phrase selection is randomized between runs.
type TemplateGenerator struct {
	extractor *extract.Extractor
	rng       *rand.Rand
}

// NewTemplateGenerator builds a generator seeded from the current time. Use
// NewTemplateGeneratorSeeded in tests.
func NewTemplateGenerator(extractor *extract.Extractor) *TemplateGenerator {
	return NewTemplateGeneratorSeeded(extractor, time.Now().UnixNano())
}

// NewTemplateGeneratorSeeded builds a generator with a fixed seed.
func NewTemplateGeneratorSeeded(extractor *extract.Extractor, seed int64) *TemplateGenerator {
	return &TemplateGenerator{
		extractor: extractor,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

var openingPhrases = []string{
	"I am writing to express my strong interest in the",
	"I am excited to apply for the",
	"I would like to express my enthusiasm for the",
	"I am delighted to apply for the",
}

var closingPhrases = []string{
	"I look forward to discussing how my skills and experience can benefit your team.",
	"I would welcome the opportunity to discuss my qualifications further.",
	"Thank you for your time and consideration of my application.",
}

var templates = map[string][]string{
	"fresher": {
		`Dear Hiring Manager,

{opening} {position} position at {company}. As a recent graduate with a strong foundation in {skills}, I am eager to bring a fresh perspective and genuine enthusiasm to your team.

During my studies and personal projects I have {achievements}, which taught me to learn quickly and deliver carefully. The emphasis your team places on {values} resonates with how I want to grow as a professional.

{closing}

Sincerely,
{name}`,
	},
	"mid-level": {
		`Dear Hiring Manager,

{opening} {position} position at {company}. With {years} years of hands-on experience in {skills}, I have {achievements} across projects of growing scope and responsibility.

I am drawn to your team's focus on {values}, and I am confident the combination of my technical background and delivery record would contribute from the first weeks.

{closing}

Sincerely,
{name}`,
	},
	"experienced": {
		`Dear Hiring Manager,

{opening} {position} position at {company}. Over {years} years I have {achievements} in production systems built on {skills}, and I have mentored engineers while doing it.

Your emphasis on {values} matches the way I like to work: pragmatic, collaborative and accountable for outcomes. I would be glad to bring that experience to your team.

{closing}

Sincerely,
{name}`,
	},
}

// Generate drafts a letter from the request. Missing fields fall back to the
// extractor's documented defaults, so generation never fails on sparse input;
// only a fully empty request is rejected.
func (g *TemplateGenerator) Generate(_ context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.JobDescription) == "" && strings.TrimSpace(req.CandidateText) == "" {
		return "", errors.New("letter: job description or candidate text is required")
	}

	job := g.extractor.JobFields(req.JobDescription)
	user := g.extractor.UserFields(req.CandidateText)

	pool := templates[user.Level]
	if len(pool) == 0 {
		pool = templates["mid-level"]
	}
	tmpl := pool[g.rng.Intn(len(pool))]

	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = "your company"
	}

	replacer := strings.NewReplacer(
		"{opening}", openingPhrases[g.rng.Intn(len(openingPhrases))],
		"{closing}", closingPhrases[g.rng.Intn(len(closingPhrases))],
		"{position}", job.Position,
		"{company}", company,
		"{skills}", joinOr(user.Skills, "relevant technologies"),
		"{achievements}", joinOr(user.Achievements, "delivered successful projects"),
		"{values}", joinOr(job.CompanyValues, "innovation and excellence"),
		"{years}", yearsLabel(user.YearsExperience),
		"{name}", user.Name,
	)

	return replacer.Replace(tmpl), nil
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func yearsLabel(n int) string {
	if n <= 0 {
		return "several"
	}
	return strconv.Itoa(n)
}
