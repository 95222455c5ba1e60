package match

import (
	"math"
	"testing"
)

func TestClassifyLevel(t *testing.T) {
	cases := []struct {
		name, text, want string
	}{
		{"empty", "", "mid-level"},
		{"graduate", "recent graduate seeking an entry level role", "fresher"},
		{"keyword senior", "senior backend engineer", "senior"},
		{"years outweigh keywords", "junior note aside, 8 years of shipping software", "senior"},
		{"three years", "3 years of backend work", "mid-level"},
		{"five plus years", "5+ years required", "senior"},
		{"expert keyword", "principal architect", "expert"},
		{"tie defaults", "junior or senior", "mid-level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyLevel(tc.text); got != tc.want {
				t.Fatalf("classifyLevel(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestScoreLevelMatch(t *testing.T) {
	cases := []struct {
		job, candidate string
		want           float64
	}{
		{"senior", "senior", 1.0},
		{"senior", "mid-level", 0.7},
		{"senior", "expert", 0.7},
		{"fresher", "senior", 0.3},
		{"fresher", "expert", 0.3},
		{"unknown", "mid-level", 1.0},
	}

	for _, tc := range cases {
		if got := scoreLevelMatch(tc.job, tc.candidate); got != tc.want {
			t.Fatalf("scoreLevelMatch(%q, %q) = %v, want %v", tc.job, tc.candidate, got, tc.want)
		}
	}
}

func TestScoreTone(t *testing.T) {
	formalLetter := "Dear Hiring Manager, I remain available. Sincerely, Jordan"
	formalJob := "Dear applicants, submit a resume"
	plainJob := "backend developer wanted"
	casualLetter := "hey folks, this gig sounds awesome"

	cases := []struct {
		name, letter, job string
		want              float64
	}{
		{"formal agreement", formalLetter, formalJob, 0.4 + 0.15 + 0.3},
		{"formal mismatch scores lowest", formalLetter, plainJob, 0.1 + 0.15 + 0.3},
		{"informal letter for formal job", casualLetter, formalJob, 0.1 + 0.15 + 0.05},
		{"plain on both sides", "backend work summary", plainJob, 0.2 + 0.15 + 0.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreTone(tc.letter, tc.job); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("scoreTone = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreLength(t *testing.T) {
	cases := []struct {
		words int
		want  float64
	}{
		{0, 0.2},
		{49, 0.2},
		{50, 0.4},
		{99, 0.4},
		{100, 0.6},
		{149, 0.6},
		{150, 0.8},
		{199, 0.8},
		{200, 1.0},
		{350, 1.0},
		{500, 1.0},
		{501, 0.8},
		{600, 0.8},
		{601, 0.6},
		{700, 0.6},
		{701, 0.4},
		{800, 0.4},
		{801, 0.2},
	}

	for _, tc := range cases {
		if got := scoreLength(tc.words); got != tc.want {
			t.Fatalf("scoreLength(%d) = %v, want %v", tc.words, got, tc.want)
		}
	}
}
