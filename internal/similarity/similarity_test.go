package similarity

import (
	"errors"
	"math"
	"testing"

	"github.com/covermatch/covermatch/internal/catalog"
	"github.com/covermatch/covermatch/internal/vectorize"
)

func TestCosine(t *testing.T) {
	a := vectorize.Vector{0.6, 0.8, 0}

	if got := Cosine(a, a); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected self-cosine 1, got %v", got)
	}

	zero := vectorize.Vector{0, 0, 0}
	if got := Cosine(a, zero); got != 0 {
		t.Fatalf("expected 0 for zero vector, got %v", got)
	}

	short := vectorize.Vector{1, 0}
	if got := Cosine(a, short); got != 0 {
		t.Fatalf("expected 0 for mismatched lengths, got %v", got)
	}

	orthogonal := vectorize.Vector{0, 0, 1}
	if got := Cosine(a, orthogonal); got != 0 {
		t.Fatalf("expected 0 for orthogonal vectors, got %v", got)
	}
}

func TestJaccard(t *testing.T) {
	got := Jaccard([]string{"python", "sql", "docker"}, []string{"python", "docker", "aws"})
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5, got %v", got)
	}

	if got := Jaccard(nil, nil); got != 0 {
		t.Fatalf("expected 0 for empty union, got %v", got)
	}

	// Duplicates collapse into the set.
	if got := Jaccard([]string{"python", "python"}, []string{"python"}); got != 1 {
		t.Fatalf("expected 1 for identical sets, got %v", got)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights.Validate(); err != nil {
		t.Fatalf("default weights must be valid: %v", err)
	}

	bad := Weights{Cosine: 0.5, Jaccard: 0.3, SkillOverlap: 0.3}
	if err := bad.Validate(); !errors.Is(err, ErrBadWeights) {
		t.Fatalf("expected ErrBadWeights for sum > 1, got %v", err)
	}

	negative := Weights{Cosine: 1.2, Jaccard: -0.2, SkillOverlap: 0}
	if err := negative.Validate(); !errors.Is(err, ErrBadWeights) {
		t.Fatalf("expected ErrBadWeights for negative weight, got %v", err)
	}
}

func TestWeightsFromMap(t *testing.T) {
	w, err := WeightsFromMap(map[string]any{"cosine": 0.6, "jaccard": 0.2, "skill_overlap": 0.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Cosine != 0.6 {
		t.Fatalf("expected cosine 0.6, got %v", w.Cosine)
	}

	if _, err := WeightsFromMap(map[string]any{"cosine": 1.0, "euclidean": 0.0}); !errors.Is(err, ErrBadWeights) {
		t.Fatalf("expected ErrBadWeights for unknown metric, got %v", err)
	}

	if _, err := WeightsFromMap(map[string]any{"cosine": 0.9}); !errors.Is(err, ErrBadWeights) {
		t.Fatalf("expected ErrBadWeights for bad sum, got %v", err)
	}

	w, err = WeightsFromMap(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != DefaultWeights {
		t.Fatalf("expected default weights for empty map, got %+v", w)
	}
}

func TestNewEngineRejectsBadWeights(t *testing.T) {
	_, err := NewEngine(catalog.Default(), Weights{Cosine: 1, Jaccard: 1, SkillOverlap: 1})
	if !errors.Is(err, ErrBadWeights) {
		t.Fatalf("expected ErrBadWeights, got %v", err)
	}
}

func TestEngineCombinedIdenticalTexts(t *testing.T) {
	engine, err := NewEngine(catalog.Default(), DefaultWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := "python developer building backend services"
	got := engine.Combined(text, text)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected identical texts to score 1, got %v", got)
	}
}

func TestEngineCombinedDisjointTexts(t *testing.T) {
	engine, err := NewEngine(catalog.Default(), DefaultWeights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := engine.Combined("python backend developer", "marketing specialist wanted")
	if got > 0.1 {
		t.Fatalf("expected near-zero score for disjoint texts, got %v", got)
	}
}

func TestCombinedPropagatesBadWeights(t *testing.T) {
	_, err := Combined("a", "b", catalog.Default(), Weights{Cosine: 2})
	if !errors.Is(err, ErrBadWeights) {
		t.Fatalf("expected ErrBadWeights, got %v", err)
	}
}
