// Package similarity computes pairwise document similarity: cosine over
// TF-IDF vectors, Jaccard over token sets, and a weighted blend of the two
// plus a skill-overlap term against the shared catalog.
package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"

	"github.com/covermatch/covermatch/internal/catalog"
	"github.com/covermatch/covermatch/internal/textproc"
	"github.com/covermatch/covermatch/internal/vectorize"
)

// ErrBadWeights is returned when a supplied weight map does not sum to 1.0
// or references unknown metric names. Weight validation happens at
// construction and call time so misconfiguration fails fast.
var ErrBadWeights = errors.New("similarity: invalid weight configuration")

const weightTolerance = 1e-9

// Weights configures the blend used by Combined. The three weights must sum
// to 1.0.
type Weights struct {
	Cosine       float64 `mapstructure:"cosine"`
	Jaccard      float64 `mapstructure:"jaccard"`
	SkillOverlap float64 `mapstructure:"skill_overlap"`
}

// DefaultWeights is the standard blend.
var DefaultWeights = Weights{Cosine: 0.5, Jaccard: 0.3, SkillOverlap: 0.2}

// Validate checks that the weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if w.Cosine < 0 || w.Jaccard < 0 || w.SkillOverlap < 0 {
		return fmt.Errorf("%w: weights must be non-negative", ErrBadWeights)
	}
	if sum := w.Cosine + w.Jaccard + w.SkillOverlap; math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1.0", ErrBadWeights, sum)
	}
	return nil
}

// WeightsFromMap decodes a metric-name keyed map, e.g. from configuration.
// Unknown metric names and sums other than 1.0 are rejected.
func WeightsFromMap(raw map[string]any) (Weights, error) {
	if len(raw) == 0 {
		return DefaultWeights, nil
	}

	var w Weights
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &w,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Weights{}, fmt.Errorf("building weights decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Weights{}, fmt.Errorf("%w: %v", ErrBadWeights, err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Cosine returns the cosine similarity of two vectors, clamped to [0,1].
// The cosine of the zero vector with anything is defined as 0 so undefined
// values never propagate. Vectors of different lengths come from different
// vocabularies and score 0.
func Cosine(a, b vectorize.Vector) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp01(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

// Jaccard returns |A ∩ B| / |A ∪ B| over the unique-token sets. The empty
// union is defined as 0.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, tok := range a {
		setA[tok] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, tok := range b {
		setB[tok] = struct{}{}
	}

	inter := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return clamp01(float64(inter) / float64(union))
}

// Engine blends cosine, Jaccard and catalog skill overlap into one score.
type Engine struct {
	catalog *catalog.Catalog
	weights Weights
}

// NewEngine validates the weights and returns an engine bound to the catalog.
func NewEngine(cat *catalog.Catalog, weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{catalog: cat, weights: weights}, nil
}

// Combined scores two raw texts with the configured blend. Cosine is
// computed over a vectorizer fitted on exactly this pair, so both vectors
// share one vocabulary.
func Combined(a, b string, cat *catalog.Catalog, weights Weights) (float64, error) {
	if err := weights.Validate(); err != nil {
		return 0, err
	}
	e := &Engine{catalog: cat, weights: weights}
	return e.Combined(a, b), nil
}

// Combined scores two raw texts with the engine's blend.
func (e *Engine) Combined(a, b string) float64 {
	cos := e.pairCosine(a, b)
	jac := Jaccard(textproc.Tokens(a), textproc.Tokens(b))
	skills := Jaccard(e.catalog.FindIn(a, -1), e.catalog.FindIn(b, -1))

	score := e.weights.Cosine*cos + e.weights.Jaccard*jac + e.weights.SkillOverlap*skills
	return clamp01(score)
}

func (e *Engine) pairCosine(a, b string) float64 {
	docs := []string{textproc.CleanDeep(a), textproc.CleanDeep(b)}
	vecs, err := vectorize.New(vectorize.Options{}).FitTransform(docs)
	if err != nil || len(vecs) != 2 {
		return 0
	}
	return Cosine(vecs[0], vecs[1])
}

// Weights returns the engine's configured blend.
func (e *Engine) Weights() Weights { return e.weights }

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}
