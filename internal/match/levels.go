package match

import (
	"strings"

	"github.com/covermatch/covermatch/internal/extract"
)

// LevelScale is the ordered experience scale used for level matching.
var LevelScale = []string{"fresher", "mid-level", "senior", "expert"}

const defaultLevel = "mid-level"

// levelKeywords vote for a level when they occur in a text.
var levelKeywords = map[string][]string{
	"fresher":   {"fresher", "graduate", "entry level", "entry-level", "junior", "intern", "trainee"},
	"mid-level": {"mid-level", "mid level", "intermediate"},
	"senior":    {"senior", "experienced", "lead", "seasoned"},
	"expert":    {"expert", "principal", "architect", "staff engineer", "distinguished"},
}

// classifyLevel places a text on the level scale by keyword-frequency
// voting. A stated number of years adds two votes to the years-derived
// level, so "6 years" outweighs a stray keyword. Ties, including the all-zero
// case, default to mid-level.
func classifyLevel(text string) string {
	lower := strings.ToLower(text)

	votes := make(map[string]int, len(LevelScale))
	for level, keywords := range levelKeywords {
		for _, kw := range keywords {
			votes[level] += strings.Count(lower, kw)
		}
	}

	if years, plus := extract.Years(text); years > 0 {
		if plus && years >= 5 {
			years++
		}
		switch extract.LevelFromYears(years) {
		case "fresher":
			votes["fresher"] += 2
		case "mid-level":
			votes["mid-level"] += 2
		default:
			votes["senior"] += 2
		}
	}

	best, bestVotes, tied := defaultLevel, 0, false
	for _, level := range LevelScale {
		switch {
		case votes[level] > bestVotes:
			best, bestVotes, tied = level, votes[level], false
		case votes[level] == bestVotes && bestVotes > 0:
			tied = true
		}
	}
	if bestVotes == 0 || tied {
		return defaultLevel
	}
	return best
}

// levelDistance is the index distance on the ordered scale.
func levelDistance(a, b string) int {
	ia, ib := levelIndex(a), levelIndex(b)
	if ia > ib {
		return ia - ib
	}
	return ib - ia
}

func levelIndex(level string) int {
	for i, l := range LevelScale {
		if l == level {
			return i
		}
	}
	return levelIndex(defaultLevel)
}

// scoreLevelMatch maps scale adjacency to a score: exact 1.0, adjacent 0.7,
// anything farther 0.3.
func scoreLevelMatch(job, candidate string) float64 {
	switch levelDistance(job, candidate) {
	case 0:
		return 1.0
	case 1:
		return 0.7
	default:
		return 0.3
	}
}

// Tone indicator sets. Each axis is detected independently in both texts.
var (
	formalIndicators = []string{
		"dear", "sincerely", "respectfully", "regards", "yours faithfully",
		"to whom it may concern",
	}
	enthusiasticIndicators = []string{
		"excited", "thrilled", "passionate", "eager", "delighted", "enthusiastic",
	}
	casualIndicators = []string{
		"hey", "awesome", "cool", "gonna", "wanna", "stuff",
	}
)

func containsAny(text string, indicators []string) bool {
	lower := strings.ToLower(text)
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// scoreTone awards partial credit per tone axis depending on agreement
// between the letter and the job description. Axis weights are 0.4 formal,
// 0.3 enthusiastic, 0.3 casual-absence; mismatches score lowest on each
// axis and the sum is clamped to 1.0.
func scoreTone(letter, job string) float64 {
	var score float64

	letterFormal, jobFormal := containsAny(letter, formalIndicators), containsAny(job, formalIndicators)
	switch {
	case letterFormal && jobFormal:
		score += 0.4
	case !letterFormal && !jobFormal:
		score += 0.2
	default:
		score += 0.1
	}

	letterEnth, jobEnth := containsAny(letter, enthusiasticIndicators), containsAny(job, enthusiasticIndicators)
	switch {
	case letterEnth && jobEnth:
		score += 0.3
	case !letterEnth && !jobEnth:
		score += 0.15
	default:
		score += 0.05
	}

	letterCasual, jobCasual := containsAny(letter, casualIndicators), containsAny(job, casualIndicators)
	switch {
	case !letterCasual:
		score += 0.3
	case jobCasual:
		score += 0.15
	default:
		score += 0.05
	}

	return clamp01(score)
}

// scoreLength maps the letter word count through the fixed piecewise scale:
// cover letters have an ideal band of 200-500 words with graceful
// degradation outside it.
func scoreLength(words int) float64 {
	switch {
	case words >= 200 && words <= 500:
		return 1.0
	case (words >= 150 && words < 200) || (words > 500 && words <= 600):
		return 0.8
	case (words >= 100 && words < 150) || (words > 600 && words <= 700):
		return 0.6
	case (words >= 50 && words < 100) || (words > 700 && words <= 800):
		return 0.4
	default:
		return 0.2
	}
}
