// Package extract pulls structured fields out of free text with ordered
// pattern rules. Free text is ambiguous, so every field is resolved by a
// first-applicable-rule policy: rules are tried in priority order and the
// first match that passes the field's validity predicate wins. Extraction is
// total: malformed input degrades to documented defaults, never to an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/covermatch/covermatch/internal/catalog"
)

const (
	// DefaultName is returned when no name rule yields a valid candidate.
	DefaultName = "Candidate"
	// DefaultPosition is returned when no position rule matches.
	DefaultPosition = "Professional"

	maxJobSkills  = 10
	maxUserSkills = 12
)

// JobFields holds the structured signals extracted from a job description.
type JobFields struct {
	Position      string   `json:"position"`
	Skills        []string `json:"skills"`
	CompanyValues []string `json:"company_values"`
}

// UserFields holds the structured signals extracted from candidate text.
type UserFields struct {
	Name            string   `json:"name"`
	YearsExperience int      `json:"years_experience"`
	Skills          []string `json:"skills"`
	Achievements    []string `json:"achievements"`
	Level           string   `json:"experience_level"`
}

// Extractor applies the rule tables against a shared skill catalog.
type Extractor struct {
	catalog *catalog.Catalog
}

// New returns an extractor bound to the given catalog.
func New(cat *catalog.Catalog) *Extractor {
	return &Extractor{catalog: cat}
}

type rule struct {
	re    *regexp.Regexp
	group int
}

// Position rules, most reliable cue first: an explicit label beats a
// "hiring/seeking" phrase, which beats a bare title-case heuristic.
var positionRules = []rule{
	{re: regexp.MustCompile(`(?i)(?:position|role|job title)[:\s]+([^\n]+)`), group: 1},
	{re: regexp.MustCompile(`(?i)(?:hiring|seeking|looking for)\s+(?:a|an)?\s*([^\n]+?(?:engineer|developer|manager|analyst|specialist|scientist)[^\n]*)`), group: 1},
	{re: regexp.MustCompile(`(?i:fresher|junior|senior|lead|principal)\s+([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`), group: 1},
	{re: regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|specialist|scientist)\b`), group: 1},
}

var (
	positionTrailerRe = regexp.MustCompile(`(?i)\s+(?:with|for|who|that|to join|at)\b.*$`)
	parenRe           = regexp.MustCompile(`\s*\([^)]*\)`)
	positionSuffixRe  = regexp.MustCompile(`(?i)\s+(?:position|role|job)$`)
	levelPrefixRe     = regexp.MustCompile(`(?i)^(?:fresher|junior|senior|lead|principal)\s+`)
)

// Name rules: explicit labels and self-introductions first, bare leading
// title-case words as the fallback. Only the cue words are case-insensitive;
// the captured name must be title case.
var nameRules = []rule{
	{re: regexp.MustCompile(`(?i:name)[:\s]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`), group: 1},
	{re: regexp.MustCompile(`(?i:my name is|i am|i'm)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`), group: 1},
	{re: regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\s+(?:with|having)\s+\d+\s*(?:years?|yrs?)`), group: 1},
	{re: regexp.MustCompile(`\b([A-Z]{2,}\s+[A-Z]{2,})\b`), group: 1},
	{re: regexp.MustCompile(`^\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`), group: 1},
}

var nameBlacklist = []string{
	"resume", "profile", "candidate", "experience", "linkedin", "github",
	"portfolio", "email", "contact", "phone",
}

var yearsRules = []rule{
	{re: regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)\b`), group: 1},
	{re: regexp.MustCompile(`(?i)(?:experience|exp)[:\s]+(\d+)`), group: 1},
}

var yearsPlusRe = regexp.MustCompile(`(?i)(\d+)\s*\+\s*(?:years?|yrs?)\b`)

// JobFields extracts position, skills and company values from a job
// description.
func (e *Extractor) JobFields(text string) JobFields {
	fields := JobFields{Position: DefaultPosition}
	if strings.TrimSpace(text) == "" {
		return fields
	}

	for _, r := range positionRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if p := cleanPosition(m[r.group]); p != "" {
			fields.Position = p
			break
		}
	}

	fields.Skills = e.catalog.FindIn(text, maxJobSkills)
	fields.CompanyValues = e.catalog.ValuesIn(text, 3)
	return fields
}

// UserFields extracts name, years of experience, skills and achievement verbs
// from candidate text.
func (e *Extractor) UserFields(text string) UserFields {
	fields := UserFields{Name: DefaultName, Level: LevelFromYears(0)}
	if strings.TrimSpace(text) == "" {
		return fields
	}

	for _, r := range nameRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := strings.TrimSpace(m[r.group]); validName(name) {
			fields.Name = name
			break
		}
	}

	years, _ := Years(text)
	fields.YearsExperience = years
	fields.Level = LevelFromYears(years)
	fields.Skills = e.catalog.FindIn(text, maxUserSkills)
	fields.Achievements = e.catalog.AchievementsIn(text, 3)
	return fields
}

// Years returns the first integer adjacent to a year token, and whether it
// carried a trailing "+". Missing years default to 0.
func Years(text string) (years int, plus bool) {
	if yearsPlusRe.MatchString(text) {
		plus = true
	}
	for _, r := range yearsRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[r.group])
		if err != nil {
			continue
		}
		return n, plus
	}
	return 0, false
}

// LevelFromYears maps years of experience to a level. The same thresholds are
// used on the job side and the candidate side so scoring stays consistent.
func LevelFromYears(years int) string {
	switch {
	case years < 2:
		return "fresher"
	case years <= 5:
		return "mid-level"
	default:
		return "experienced"
	}
}

// validName is the name validity predicate: at least two space-separated
// parts, total length of five or more and no generic-noun blacklist hit.
func validName(name string) bool {
	if len(name) < 5 || len(strings.Fields(name)) < 2 {
		return false
	}
	lower := strings.ToLower(name)
	for _, bad := range nameBlacklist {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return true
}

func cleanPosition(raw string) string {
	p := strings.SplitN(raw, "\n", 2)[0]
	p = parenRe.ReplaceAllString(p, "")
	p = positionTrailerRe.ReplaceAllString(p, "")
	p = strings.Trim(p, " .!?,")
	p = positionSuffixRe.ReplaceAllString(p, "")
	p = levelPrefixRe.ReplaceAllString(p, "")
	return strings.TrimSpace(p)
}
