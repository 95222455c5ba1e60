package pipeline

import (
	"context"
	"fmt"

	"github.com/covermatch/covermatch/internal/similarity"
	"github.com/covermatch/covermatch/internal/textproc"
	"github.com/covermatch/covermatch/internal/vectorize"
)

type normalizeStage struct {
	deep bool
}

// NewNormalize returns the stage that cleans every document. Documents that
// normalize to nothing are dropped from the corpus so downstream vectors stay
// aligned with non-empty text.
func NewNormalize(deep bool) Stage {
	return &normalizeStage{deep: deep}
}

func (s *normalizeStage) Name() string { return "normalize" }

func (s *normalizeStage) Run(_ context.Context, c *Corpus) (Step, error) {
	initial := len(c.Letters) + len(c.Jobs)

	c.Letters, c.NormalizedLetters = s.normalize(c.Letters)
	c.Jobs, c.NormalizedJobs = s.normalize(c.Jobs)

	left := len(c.Letters) + len(c.Jobs)
	return Step{Initial: initial, Dropped: initial - left, Left: left}, nil
}

func (s *normalizeStage) normalize(docs []string) (kept, normalized []string) {
	for _, doc := range docs {
		clean := textproc.Clean(doc)
		if s.deep {
			clean = textproc.CleanDeep(doc)
		}
		if clean == "" {
			continue
		}
		kept = append(kept, doc)
		normalized = append(normalized, clean)
	}
	return kept, normalized
}

type vectorizeStage struct {
	opts vectorize.Options
}

// NewVectorize returns the stage that fits one vectorizer over the combined
// corpus and splits the vectors back into letters and jobs. Fitting on the
// combined batch guarantees both sides share a single vocabulary, which the
// cross-similarity stage depends on.
func NewVectorize(opts vectorize.Options) Stage {
	return &vectorizeStage{opts: opts}
}

func (s *vectorizeStage) Name() string { return "vectorize" }

func (s *vectorizeStage) Run(_ context.Context, c *Corpus) (Step, error) {
	if len(c.NormalizedLetters) == 0 || len(c.NormalizedJobs) == 0 {
		return Step{}, fmt.Errorf("normalized corpus is empty on one side (letters=%d, jobs=%d)",
			len(c.NormalizedLetters), len(c.NormalizedJobs))
	}

	combined := make([]string, 0, len(c.NormalizedLetters)+len(c.NormalizedJobs))
	combined = append(combined, c.NormalizedLetters...)
	combined = append(combined, c.NormalizedJobs...)

	v := vectorize.New(s.opts)
	vectors, err := v.FitTransform(combined)
	if err != nil {
		return Step{}, err
	}

	c.LetterVectors = vectors[:len(c.NormalizedLetters)]
	c.JobVectors = vectors[len(c.NormalizedLetters):]
	c.VocabularySize = len(v.Vocabulary())

	total := len(vectors)
	return Step{Initial: total, Dropped: 0, Left: total}, nil
}

type crossSimilarityStage struct{}

// NewCrossSimilarity returns the stage that builds the letters-by-jobs
// similarity matrix. It requires the vectorize stage to have run first.
func NewCrossSimilarity() Stage {
	return &crossSimilarityStage{}
}

func (s *crossSimilarityStage) Name() string { return "cross_similarity" }

func (s *crossSimilarityStage) Run(_ context.Context, c *Corpus) (Step, error) {
	if c.LetterVectors == nil || c.JobVectors == nil {
		return Step{}, fmt.Errorf("vectors are not computed: run the vectorize stage first")
	}

	c.Similarity = similarity.Cross(c.LetterVectors, c.JobVectors)

	cells := c.Similarity.Rows() * c.Similarity.Cols()
	return Step{Initial: cells, Dropped: 0, Left: cells}, nil
}
