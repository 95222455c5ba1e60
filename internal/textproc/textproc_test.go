package textproc

import (
	"reflect"
	"testing"
)

func TestCleanStripsContactsAndPunctuation(t *testing.T) {
	in := "Contact John.Doe@example.com or call +1 (555) 123-4567. Python & Go!"
	got := Clean(in)

	want := "contact or call python go"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := Clean("  \t\n "); got != "" {
		t.Fatalf("expected empty output for whitespace, got %q", got)
	}
}

func TestCleanDeepRemovesStopwordsAndShortTokens(t *testing.T) {
	got := CleanDeep("I am working with the databases of a team")

	// "i", "am", "with", "the", "of", "a" are stopwords, "working" and
	// "databases" reduce to their roots.
	want := "work database team"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStem(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"processes", "process"},
		{"technologies", "technology"},
		{"management", "manage"},
		{"building", "build"},
		{"delivered", "deliver"},
		{"quickly", "quick"},
		{"systems", "system"},
		{"class", "class"},
		{"status", "status"},
		{"analysis", "analysis"},
		{"go", "go"},
	}

	for _, tc := range cases {
		if got := Stem(tc.in); got != tc.want {
			t.Fatalf("Stem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUniqueTokensKeepsFirstOccurrenceOrder(t *testing.T) {
	got := UniqueTokens("python java python go java")
	want := []string{"python", "java", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize([]string{"python developer", "java developer wanted"})

	if stats.TotalDocuments != 2 {
		t.Fatalf("expected 2 documents, got %d", stats.TotalDocuments)
	}
	if stats.TotalWords != 5 {
		t.Fatalf("expected 5 words, got %d", stats.TotalWords)
	}
	if stats.AverageWords != 2.5 {
		t.Fatalf("expected average 2.5, got %v", stats.AverageWords)
	}
	if stats.VocabularySize != 4 {
		t.Fatalf("expected vocabulary of 4, got %d", stats.VocabularySize)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if stats := Summarize(nil); stats != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestFilterByLength(t *testing.T) {
	docs := []string{"one", "one two", "one two three", "one two three four"}
	got := FilterByLength(docs, 2, 3)

	want := []string{"one two", "one two three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
