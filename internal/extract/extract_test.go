package extract

import (
	"reflect"
	"testing"

	"github.com/covermatch/covermatch/internal/catalog"
)

func newExtractor() *Extractor {
	return New(catalog.Default())
}

func TestJobFieldsEmptyInput(t *testing.T) {
	fields := newExtractor().JobFields("   ")

	if fields.Position != DefaultPosition {
		t.Fatalf("expected default position, got %q", fields.Position)
	}
	if len(fields.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", fields.Skills)
	}
}

func TestJobFieldsExplicitLabelWins(t *testing.T) {
	text := "Position: Senior Python Developer\nWe are hiring a Data Analyst too."
	fields := newExtractor().JobFields(text)

	if fields.Position != "Python Developer" {
		t.Fatalf("expected level prefix stripped, got %q", fields.Position)
	}
}

func TestJobFieldsHiringPhrase(t *testing.T) {
	text := "We are seeking a backend engineer with strong sql skills to join our team"
	fields := newExtractor().JobFields(text)

	if fields.Position != "backend engineer" {
		t.Fatalf("unexpected position: %q", fields.Position)
	}
	if !reflect.DeepEqual(fields.Skills, []string{"sql"}) {
		t.Fatalf("unexpected skills: %v", fields.Skills)
	}
}

func TestJobFieldsSkillsAndValues(t *testing.T) {
	text := "Position: Developer\nRequired: python, docker. We value innovation and growth above all."
	fields := newExtractor().JobFields(text)

	if !reflect.DeepEqual(fields.Skills, []string{"python", "docker"}) {
		t.Fatalf("unexpected skills: %v", fields.Skills)
	}
	if !reflect.DeepEqual(fields.CompanyValues, []string{"innovation", "growth"}) {
		t.Fatalf("unexpected values: %v", fields.CompanyValues)
	}
}

func TestUserFieldsEmptyInput(t *testing.T) {
	fields := newExtractor().UserFields("")

	if fields.Name != DefaultName {
		t.Fatalf("expected default name, got %q", fields.Name)
	}
	if fields.YearsExperience != 0 {
		t.Fatalf("expected 0 years, got %d", fields.YearsExperience)
	}
	if fields.Level != "fresher" {
		t.Fatalf("expected fresher for 0 years, got %q", fields.Level)
	}
}

func TestUserFieldsNameAndYears(t *testing.T) {
	text := "My name is Priya Sharma and I have worked with python and aws for 4 years."
	fields := newExtractor().UserFields(text)

	if fields.Name != "Priya Sharma" {
		t.Fatalf("unexpected name: %q", fields.Name)
	}
	if fields.YearsExperience != 4 {
		t.Fatalf("expected 4 years, got %d", fields.YearsExperience)
	}
	if fields.Level != "mid-level" {
		t.Fatalf("expected mid-level, got %q", fields.Level)
	}
	if !reflect.DeepEqual(fields.Skills, []string{"python", "aws"}) {
		t.Fatalf("unexpected skills: %v", fields.Skills)
	}
}

func TestUserFieldsBlacklistedNameFallsThrough(t *testing.T) {
	fields := newExtractor().UserFields("Resume Profile\nSoftware developer since 2019")

	if fields.Name != DefaultName {
		t.Fatalf("expected default name for blacklisted candidate, got %q", fields.Name)
	}
}

func TestYears(t *testing.T) {
	cases := []struct {
		in    string
		years int
		plus  bool
	}{
		{"5+ years of experience", 5, true},
		{"3 years in backend work", 3, false},
		{"experience: 7", 7, false},
		{"no experience stated", 0, false},
	}

	for _, tc := range cases {
		years, plus := Years(tc.in)
		if years != tc.years || plus != tc.plus {
			t.Fatalf("Years(%q) = (%d, %v), want (%d, %v)", tc.in, years, plus, tc.years, tc.plus)
		}
	}
}

func TestLevelFromYears(t *testing.T) {
	cases := []struct {
		years int
		want  string
	}{
		{0, "fresher"},
		{1, "fresher"},
		{2, "mid-level"},
		{5, "mid-level"},
		{6, "experienced"},
		{15, "experienced"},
	}

	for _, tc := range cases {
		if got := LevelFromYears(tc.years); got != tc.want {
			t.Fatalf("LevelFromYears(%d) = %q, want %q", tc.years, got, tc.want)
		}
	}
}
