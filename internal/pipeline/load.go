package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// LoadDir reads every .txt file of a directory in name order and returns the
// file contents as documents. Document format parsing (PDF, DOCX) happens
// outside this tool; inputs here are plain text.
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]string, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}
		docs = append(docs, string(data))
	}
	return docs, nil
}

// SplitDocuments splits a raw multi-document text on blank-line separators
// and keeps chunks of at least minLen characters.
func SplitDocuments(raw string, minLen int) []string {
	var docs []string
	for _, chunk := range strings.Split(raw, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) >= minLen {
			docs = append(docs, chunk)
		}
	}
	return docs
}

// ExportCSV writes the top n letter/job pairs of the corpus as CSV rows with
// short document previews.
func (c *Corpus) ExportCSV(w io.Writer, n int) error {
	pairs, err := c.TopOverall(n)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"letter_index", "job_index", "similarity_score", "letter_preview", "job_preview"}); err != nil {
		return err
	}
	for _, p := range pairs {
		record := []string{
			strconv.Itoa(p.Letter),
			strconv.Itoa(p.Job),
			strconv.FormatFloat(p.Score, 'f', 4, 64),
			preview(c.Letters[p.Letter]),
			preview(c.Jobs[p.Job]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func preview(doc string) string {
	doc = strings.Join(strings.Fields(doc), " ")
	if len(doc) > 100 {
		return doc[:100] + "..."
	}
	return doc
}
