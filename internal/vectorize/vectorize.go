// Package vectorize turns batches of documents into TF-IDF feature vectors
// over a vocabulary of unigrams and adjacent bigrams.
//
// A Vectorizer is a small state machine: it starts unfitted, Fit builds the
// vocabulary and document frequencies from a batch, and only then Transform
// may produce vectors. Vectors produced by one fitted instance must never be
// compared against vectors from a differently fitted instance, because the
// vocabularies may differ.
//
// A single Vectorizer must not be shared across concurrent Fit calls;
// concurrent Transform calls on an already fitted instance are safe.
package vectorize

import (
	"errors"
	"math"
	"sort"

	"github.com/covermatch/covermatch/internal/textproc"
)

// ErrNotFitted is returned by Transform when Fit has not been called. Using
// an unfitted vectorizer is a programming error and propagates to the caller.
var ErrNotFitted = errors.New("vectorize: transform called before fit")

// Vector is a fixed-length feature vector aligned to the fitted vocabulary.
type Vector []float64

// Options bound the vocabulary built at fit time.
type Options struct {
	// MaxFeatures caps the vocabulary to the highest-document-frequency
	// terms. Zero means the default of 5000.
	MaxFeatures int
	// MinDF drops terms occurring in fewer than MinDF documents. Zero means 1.
	MinDF int
	// MaxDF drops terms occurring in more than this fraction of documents.
	// Zero means 1.0, i.e. no upper cut.
	MaxDF float64
}

const defaultMaxFeatures = 5000

// Vectorizer converts documents into TF-IDF vectors.
type Vectorizer struct {
	opts   Options
	vocab  []string
	index  map[string]int
	idf    []float64
	fitted bool
}

// New returns an unfitted vectorizer with defaults applied.
func New(opts Options) *Vectorizer {
	if opts.MaxFeatures <= 0 {
		opts.MaxFeatures = defaultMaxFeatures
	}
	if opts.MinDF <= 0 {
		opts.MinDF = 1
	}
	if opts.MaxDF <= 0 || opts.MaxDF > 1 {
		opts.MaxDF = 1.0
	}
	return &Vectorizer{opts: opts}
}

// Fit builds the vocabulary and inverse document frequencies from the batch.
// Calling Fit again discards the previous vocabulary. Identical documents in
// identical order always produce the identical vocabulary: candidate terms
// are ordered by document frequency descending with a lexicographic
// tie-break before the MaxFeatures cut, and that order is the vector order.
func (v *Vectorizer) Fit(documents []string) error {
	df := make(map[string]int)
	for _, doc := range documents {
		for term := range termSet(doc) {
			df[term]++
		}
	}

	n := len(documents)
	maxCount := int(math.Floor(v.opts.MaxDF * float64(n)))

	candidates := make([]string, 0, len(df))
	for term, count := range df {
		if count < v.opts.MinDF {
			continue
		}
		if n > 0 && count > maxCount {
			continue
		}
		candidates = append(candidates, term)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if df[candidates[i]] != df[candidates[j]] {
			return df[candidates[i]] > df[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > v.opts.MaxFeatures {
		candidates = candidates[:v.opts.MaxFeatures]
	}

	v.vocab = candidates
	v.index = make(map[string]int, len(candidates))
	v.idf = make([]float64, len(candidates))
	for i, term := range candidates {
		v.index[term] = i
		v.idf[i] = 1 + math.Log(float64(n)/float64(df[term]))
	}
	v.fitted = true
	return nil
}

// Transform converts documents into vectors over the fitted vocabulary.
// Each vector is L2-normalized, so the cosine of a non-zero vector with
// itself is exactly 1.
func (v *Vectorizer) Transform(documents []string) ([]Vector, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}

	vectors := make([]Vector, len(documents))
	for d, doc := range documents {
		vec := make(Vector, len(v.vocab))
		terms := docTerms(doc)
		if len(terms) == 0 {
			vectors[d] = vec
			continue
		}

		counts := make(map[string]int, len(terms))
		for _, term := range terms {
			counts[term]++
		}

		var norm float64
		for term, count := range counts {
			i, ok := v.index[term]
			if !ok {
				continue
			}
			w := (float64(count) / float64(len(terms))) * v.idf[i]
			vec[i] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range vec {
				vec[i] /= norm
			}
		}
		vectors[d] = vec
	}
	return vectors, nil
}

// FitTransform fits on the batch and transforms it in one call.
func (v *Vectorizer) FitTransform(documents []string) ([]Vector, error) {
	if err := v.Fit(documents); err != nil {
		return nil, err
	}
	return v.Transform(documents)
}

// Fitted reports whether Fit has completed.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// Vocabulary returns the ordered vocabulary terms of the fitted instance.
func (v *Vectorizer) Vocabulary() []string {
	out := make([]string, len(v.vocab))
	copy(out, v.vocab)
	return out
}

// TermWeight pairs a vocabulary term with its weight in a vector.
type TermWeight struct {
	Term   string
	Weight float64
}

// TopTerms returns the n highest-weighted vocabulary terms of the vector,
// weight descending with vocabulary-index ascending tie-break.
func (v *Vectorizer) TopTerms(vec Vector, n int) []TermWeight {
	if !v.fitted || n <= 0 {
		return nil
	}

	terms := make([]TermWeight, 0, len(vec))
	for i, w := range vec {
		if i >= len(v.vocab) || w == 0 {
			continue
		}
		terms = append(terms, TermWeight{Term: v.vocab[i], Weight: w})
	}
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].Weight > terms[j].Weight })
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// docTerms returns the ordered unigram and adjacent-bigram terms of the
// basic-cleaned document.
func docTerms(doc string) []string {
	words := textproc.Tokens(doc)
	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

func termSet(doc string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, term := range docTerms(doc) {
		set[term] = struct{}{}
	}
	return set
}
