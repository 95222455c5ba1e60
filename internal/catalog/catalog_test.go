package catalog

import (
	"reflect"
	"testing"
)

func TestFindInKeepsCatalogOrder(t *testing.T) {
	cat := Default()

	got := cat.FindIn("Experience with docker, python and sql required", -1)
	want := []string{"python", "sql", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFindInCapsResults(t *testing.T) {
	cat := Default()
	text := "python java sql mysql docker kubernetes"

	got := cat.FindIn(text, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 skills, got %v", got)
	}
	if got[0] != "python" || got[1] != "java" {
		t.Fatalf("unexpected skills: %v", got)
	}

	if res := cat.FindIn(text, 0); res != nil {
		t.Fatalf("expected nil for max 0, got %v", res)
	}
}

func TestFindInEmptyText(t *testing.T) {
	if got := Default().FindIn("  ", -1); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestValuesAndAchievements(t *testing.T) {
	cat := Default()

	values := cat.ValuesIn("we value innovation and collaboration", 3)
	if !reflect.DeepEqual(values, []string{"innovation", "collaboration"}) {
		t.Fatalf("unexpected values: %v", values)
	}

	achievements := cat.AchievementsIn("developed and optimized services", 3)
	if !reflect.DeepEqual(achievements, []string{"developed", "optimized"}) {
		t.Fatalf("unexpected achievements: %v", achievements)
	}
}

func TestFromConfigMergesExtensions(t *testing.T) {
	cat, err := FromConfig(map[string]any{
		"skills": map[string]any{
			"programming": []string{"kotlin", "Python"},
			"embedded":    []string{"fpga", "rtos"},
		},
		"values": []string{"transparency"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	programming := cat.Skills("programming")
	if programming[len(programming)-1] != "kotlin" {
		t.Fatalf("expected kotlin appended, got %v", programming)
	}
	// "Python" already exists and must not be duplicated.
	count := 0
	for _, s := range programming {
		if s == "python" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected python once, got %v", programming)
	}

	categories := cat.Categories()
	if categories[len(categories)-1] != "embedded" {
		t.Fatalf("expected embedded as the last category, got %v", categories)
	}

	if values := cat.ValuesIn("we value transparency", 1); len(values) != 1 {
		t.Fatalf("expected merged value to be found, got %v", values)
	}
}

func TestFromConfigRejectsUnknownKeys(t *testing.T) {
	if _, err := FromConfig(map[string]any{"skilz": []string{"python"}}); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestFromConfigEmptyYieldsDefault(t *testing.T) {
	cat, err := FromConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cat.Categories(), Default().Categories()) {
		t.Fatalf("expected default categories, got %v", cat.Categories())
	}
}
