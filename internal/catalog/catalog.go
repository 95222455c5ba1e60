// Package catalog holds the process-wide skill taxonomy shared by field
// extraction and similarity scoring. The catalog is built once at startup and
// never mutated afterwards, so it is safe to share across goroutines.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Catalog maps category names to ordered lists of canonical skill strings.
// It also carries the company-values and achievement-verb vocabularies used
// by the field extractor.
type Catalog struct {
	categories   []string
	skills       map[string][]string
	values       []string
	achievements []string
}

// Extensions describes user-supplied additions merged over the built-in
// catalog via configuration.
type Extensions struct {
	Skills       map[string][]string `mapstructure:"skills"`
	Values       []string            `mapstructure:"values"`
	Achievements []string            `mapstructure:"achievements"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		categories: []string{"programming", "web", "database", "cloud", "ai_ml", "tools"},
		skills: map[string][]string{
			"programming": {"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust"},
			"web":         {"react", "vue", "angular", "nodejs", "express", "django", "flask", "spring", "html", "css"},
			"database":    {"sql", "mysql", "postgresql", "mongodb", "redis", "oracle"},
			"cloud":       {"aws", "azure", "gcp", "docker", "kubernetes", "terraform"},
			"ai_ml":       {"machine learning", "tensorflow", "pytorch", "nlp", "computer vision"},
			"tools":       {"git", "agile", "scrum", "jenkins", "ci/cd", "linux"},
		},
		values: []string{
			"innovation", "excellence", "collaboration", "growth",
			"integrity", "diversity", "customer focus",
		},
		achievements: []string{
			"developed", "created", "implemented", "led",
			"managed", "achieved", "improved", "optimized",
		},
	}
}

// FromConfig merges the provided raw extension map over the default catalog.
// The raw map comes straight from the configuration file, so it is decoded
// with mapstructure before merging. A nil or empty map yields the default
// catalog unchanged.
func FromConfig(raw map[string]any) (*Catalog, error) {
	cat := Default()
	if len(raw) == 0 {
		return cat, nil
	}

	var ext Extensions
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &ext,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building catalog decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding catalog extensions: %w", err)
	}

	// New categories are appended in sorted order so the merged catalog
	// order stays deterministic regardless of map iteration.
	extra := make([]string, 0, len(ext.Skills))
	for category := range ext.Skills {
		extra = append(extra, category)
	}
	sort.Strings(extra)

	for _, category := range extra {
		if _, ok := cat.skills[category]; !ok {
			cat.categories = append(cat.categories, category)
		}
		cat.skills[category] = appendUnique(cat.skills[category], ext.Skills[category])
	}

	cat.values = appendUnique(cat.values, ext.Values)
	cat.achievements = appendUnique(cat.achievements, ext.Achievements)

	return cat, nil
}

func appendUnique(existing []string, extra []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		seen[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range extra {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		existing = append(existing, s)
	}
	return existing
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Skills returns the skills of a single category in catalog order.
func (c *Catalog) Skills(category string) []string {
	skills := c.skills[category]
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// All returns every skill in catalog order: categories first, then the
// in-category order.
func (c *Catalog) All() []string {
	var out []string
	for _, category := range c.categories {
		out = append(out, c.skills[category]...)
	}
	return out
}

// FindIn returns the catalog skills mentioned in the text, in catalog order,
// capped at max entries. The membership test is a case-insensitive substring
// match, same as the one used on the extraction side, so "skill" means the
// same thing across the whole pipeline.
func (c *Catalog) FindIn(text string, max int) []string {
	return findTerms(c.All(), text, max)
}

// ValuesIn returns the company values mentioned in the text.
func (c *Catalog) ValuesIn(text string, max int) []string {
	return findTerms(c.values, text, max)
}

// AchievementsIn returns the achievement verbs mentioned in the text.
func (c *Catalog) AchievementsIn(text string, max int) []string {
	return findTerms(c.achievements, text, max)
}

func findTerms(terms []string, text string, max int) []string {
	if strings.TrimSpace(text) == "" || max == 0 {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
			if max > 0 && len(found) == max {
				break
			}
		}
	}
	return found
}
