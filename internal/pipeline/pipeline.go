// Package pipeline runs the batch matching flow: a corpus of cover letters
// and job descriptions is normalized, vectorized over one shared vocabulary
// and cross-scored into a similarity matrix. Stages execute in order with
// per-step statistics logged the same way for every stage.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/similarity"
	"github.com/covermatch/covermatch/internal/vectorize"
)

// Corpus carries the documents through the stages. Letters and Jobs are the
// raw inputs; the remaining fields are filled by the stages.
type Corpus struct {
	Letters []string
	Jobs    []string

	NormalizedLetters []string
	NormalizedJobs    []string

	LetterVectors []vectorize.Vector
	JobVectors    []vectorize.Vector
	VocabularySize int

	// Similarity has letters as rows and jobs as columns.
	Similarity *similarity.Matrix
}

// Step describes the result of executing one stage.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Stage is a single pipeline step applied to the corpus.
type Stage interface {
	Name() string
	Run(ctx context.Context, c *Corpus) (Step, error)
}

// Pipeline executes stages sequentially.
type Pipeline struct {
	stages []Stage
	logger *zap.Logger
}

// New builds a pipeline over the given stages.
func New(stages []Stage, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{stages: stages, logger: logger}
}

// Run executes every stage in order, logging per-step statistics. The first
// failing stage aborts the run.
func (p *Pipeline) Run(ctx context.Context, c *Corpus) error {
	for _, stage := range p.stages {
		step, err := stage.Run(ctx, c)
		if err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}

		p.logger.Info("pipeline step",
			zap.String("name", stage.Name()),
			zap.Int("initial", step.Initial),
			zap.Int("dropped", step.Dropped),
			zap.Int("left", step.Left),
		)
	}
	return nil
}

// BestLettersFor ranks the letters for one job description, best first.
func (c *Corpus) BestLettersFor(jobIdx, n int) ([]similarity.Match, error) {
	if c.Similarity == nil {
		return nil, fmt.Errorf("similarity matrix is not computed")
	}
	scores, err := c.Similarity.Col(jobIdx)
	if err != nil {
		return nil, err
	}
	return similarity.TopK(scores, n, -1), nil
}

// BestJobsFor ranks the job descriptions for one letter, best first.
func (c *Corpus) BestJobsFor(letterIdx, n int) ([]similarity.Match, error) {
	if c.Similarity == nil {
		return nil, fmt.Errorf("similarity matrix is not computed")
	}
	scores, err := c.Similarity.Row(letterIdx)
	if err != nil {
		return nil, err
	}
	return similarity.TopK(scores, n, -1), nil
}

// Pair is one letter/job cell of the similarity matrix.
type Pair struct {
	Letter int     `json:"letter"`
	Job    int     `json:"job"`
	Score  float64 `json:"score"`
}

// TopOverall returns the n best letter/job pairs across the whole matrix,
// score descending with (letter, job) index order breaking ties.
func (c *Corpus) TopOverall(n int) ([]Pair, error) {
	if c.Similarity == nil {
		return nil, fmt.Errorf("similarity matrix is not computed")
	}

	flat := make([]float64, 0, c.Similarity.Rows()*c.Similarity.Cols())
	for i := 0; i < c.Similarity.Rows(); i++ {
		row, err := c.Similarity.Row(i)
		if err != nil {
			return nil, err
		}
		flat = append(flat, row...)
	}

	ranked := similarity.TopK(flat, n, -1)
	pairs := make([]Pair, len(ranked))
	for i, m := range ranked {
		pairs[i] = Pair{
			Letter: m.Index / c.Similarity.Cols(),
			Job:    m.Index % c.Similarity.Cols(),
			Score:  m.Score,
		}
	}
	return pairs, nil
}
