// Package textproc normalizes free text before extraction and vectorization.
// All functions are pure: empty input yields empty output and nothing here
// ever returns an error.
package textproc

import (
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`\S+@\S+`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}`)
	nonLetterRe = regexp.MustCompile(`[^a-z\s]`)
	spaceRe     = regexp.MustCompile(`\s+`)
)

// Clean lowercases the text, strips email-like and phone-like substrings,
// drops everything that is not a letter or a space and collapses whitespace.
func Clean(text string) string {
	text = strings.ToLower(text)
	text = emailRe.ReplaceAllString(text, " ")
	text = phoneRe.ReplaceAllString(text, " ")
	text = nonLetterRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// CleanDeep applies Clean and additionally removes stopwords, drops tokens
// shorter than three characters and reduces the remaining tokens to a root
// form. The reduction is intentionally conservative: the same surface word
// always maps to the same root, while roots of distinct words may collide.
func CleanDeep(text string) string {
	tokens := strings.Fields(Clean(text))
	kept := tokens[:0]
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		kept = append(kept, Stem(tok))
	}
	return strings.Join(kept, " ")
}

// Tokens returns the ordered, non-unique token sequence of the basic-cleaned
// text.
func Tokens(text string) []string {
	return strings.Fields(Clean(text))
}

// DeepTokens returns the ordered token sequence after deep cleaning.
func DeepTokens(text string) []string {
	return strings.Fields(CleanDeep(text))
}

// UniqueTokens returns the distinct tokens of the basic-cleaned text in first
// occurrence order.
func UniqueTokens(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range Tokens(text) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// WordCount counts whitespace-separated words of the raw text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// IsStopword reports whether the lowercase word is in the stopword set.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Stem reduces a token to a canonical root by stripping common English
// suffixes. Rules fire in order, at most one per call.
func Stem(word string) string {
	switch {
	case strings.HasSuffix(word, "sses"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "ment") && len(word) > 6:
		return strings.TrimSuffix(word, "ment")
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return strings.TrimSuffix(word, "ing")
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return strings.TrimSuffix(word, "ed")
	case strings.HasSuffix(word, "ly") && len(word) > 4:
		return strings.TrimSuffix(word, "ly")
	case strings.HasSuffix(word, "s") && len(word) > 3 &&
		!strings.HasSuffix(word, "ss") && !strings.HasSuffix(word, "us") && !strings.HasSuffix(word, "is"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// Stats summarizes a batch of processed documents.
type Stats struct {
	TotalDocuments int
	TotalWords     int
	AverageWords   float64
	VocabularySize int
}

// Summarize computes basic statistics over the provided documents.
func Summarize(documents []string) Stats {
	if len(documents) == 0 {
		return Stats{}
	}

	vocab := make(map[string]struct{})
	total := 0
	for _, doc := range documents {
		words := strings.Fields(doc)
		total += len(words)
		for _, w := range words {
			vocab[w] = struct{}{}
		}
	}

	return Stats{
		TotalDocuments: len(documents),
		TotalWords:     total,
		AverageWords:   float64(total) / float64(len(documents)),
		VocabularySize: len(vocab),
	}
}

// FilterByLength keeps documents whose word count falls within [min, max].
func FilterByLength(documents []string, min, max int) []string {
	var kept []string
	for _, doc := range documents {
		n := WordCount(doc)
		if n >= min && n <= max {
			kept = append(kept, doc)
		}
	}
	return kept
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
		"itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
		"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "out", "over", "own", "same", "she", "should", "so", "some",
		"such", "than", "that", "the", "their", "theirs", "them", "then",
		"there", "these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "we", "were", "what", "when",
		"where", "which", "while", "who", "whom", "why", "will", "with", "you",
		"your", "yours", "yourself",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
