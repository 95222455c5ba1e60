package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/pipeline"
	"github.com/covermatch/covermatch/internal/similarity"
)

const (
	PromptBestLetters = "Show the best letters for a job"
	PromptBestJobs    = "Show the best jobs for a letter"
	PromptExportCSV   = "Export the ranking to a CSV file"
	PromptExit        = "Exit"
	PromptBack        = "back"
)

var rankPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptBestLetters, PromptBestJobs, PromptExportCSV, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Cross-score a corpus of cover letters against a corpus of job descriptions",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("letters", "", "directory with cover letter .txt files")
	rankCmd.Flags().String("jobs", "", "directory with job description .txt files")
	rankCmd.Flags().Bool("deep", false, "use deep normalization (stopword removal and stemming)")
	rankCmd.Flags().BoolP("auto", "y", false, "print the top pairs and exit without prompting")
	rankCmd.Flags().IntP("top", "n", 5, "how many matches to show per query")
	rankCmd.Flags().Float64P("threshold", "t", -1, "drop matches scoring below this value")
	rankCmd.Flags().String("csv", "ranking.csv", "target file for CSV export")
}

func rank(cmd *cobra.Command) {
	ctx := context.Background()
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	letters, err := pipeline.LoadDir(cmd.Flag("letters").Value.String())
	if err != nil {
		log.Fatal("loading cover letters", zap.Error(err))
	}

	jobs, err := pipeline.LoadDir(cmd.Flag("jobs").Value.String())
	if err != nil {
		log.Fatal("loading job descriptions", zap.Error(err))
	}

	if len(letters) == 0 || len(jobs) == 0 {
		log.Fatal("both corpora must contain at least one .txt document",
			zap.Int("letters", len(letters)),
			zap.Int("jobs", len(jobs)),
		)
	}

	deep := cmd.Flag("deep").Value.String() == "true"
	if config != nil && config.Normalize != nil && config.Normalize.Deep {
		deep = true
	}

	corpus := &pipeline.Corpus{Letters: letters, Jobs: jobs}
	stages := []pipeline.Stage{
		pipeline.NewNormalize(deep),
		pipeline.NewVectorize(vectorizerOptions(config)),
		pipeline.NewCrossSimilarity(),
	}

	if err := pipeline.New(stages, log).Run(ctx, corpus); err != nil {
		log.Fatal("running the matching pipeline", zap.Error(err))
	}

	top, err := cmd.Flags().GetInt("top")
	if err != nil {
		log.Fatal("reading the top flag", zap.Error(err))
	}
	threshold, err := cmd.Flags().GetFloat64("threshold")
	if err != nil {
		log.Fatal("reading the threshold flag", zap.Error(err))
	}

	if cmd.Flag("auto").Value.String() == "true" {
		pairs, err := corpus.TopOverall(top)
		if err != nil {
			log.Fatal("ranking the corpus", zap.Error(err))
		}
		pairs = filterPairs(pairs, threshold)

		pretty, _ := json.MarshalIndent(pairs, "", "  ")
		fmt.Println(string(pretty))
		return
	}

	for {
		_, action, err := rankPrompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		if err := handleRankAction(action, corpus, cmd.Flag("csv").Value.String(), top, threshold, log); err != nil {
			log.Fatal("exiting", zap.Error(err))
		}
		if action == PromptExit {
			return
		}
	}
}

func handleRankAction(action string, corpus *pipeline.Corpus, csvFile string, top int, threshold float64, log *zap.Logger) error {
	switch action {
	case PromptBestLetters:
		return browseMatches(corpus.Jobs, corpus.Letters, top, threshold, "Choose a job and press ENTER", corpus.BestLettersFor)
	case PromptBestJobs:
		return browseMatches(corpus.Letters, corpus.Jobs, top, threshold, "Choose a letter and press ENTER", corpus.BestJobsFor)
	case PromptExportCSV:
		return exportCSV(corpus, csvFile, top, log)
	case PromptExit:
		log.Info("exiting", zap.String("reason", "got exit from prompt"))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// browseMatches lets the user pick one query document and prints its ranked
// counterparts until "back" is chosen.
func browseMatches(queries, candidates []string, top int, threshold float64, label string, best func(int, int) ([]similarity.Match, error)) error {
	for {
		items := make([]string, 0, len(queries)+1)
		for i, doc := range queries {
			items = append(items, fmt.Sprintf("%d %s", i, docLabel(doc)))
		}

		selectPrompt := promptui.Select{
			Label: label,
			Items: append(items, PromptBack),
		}

		idx, selected, err := selectPrompt.Run()
		if err != nil {
			return err
		}
		if selected == PromptBack {
			return nil
		}

		matches, err := best(idx, top)
		if err != nil {
			return err
		}

		for _, m := range filterMatches(matches, threshold) {
			fmt.Printf("  %.4f  [%d] %s\n", m.Score, m.Index, docLabel(candidates[m.Index]))
		}
	}
}

func exportCSV(corpus *pipeline.Corpus, csvFile string, top int, log *zap.Logger) error {
	f, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("creating %q: %w", csvFile, err)
	}
	defer f.Close()

	if err := corpus.ExportCSV(f, top); err != nil {
		return fmt.Errorf("exporting the ranking: %w", err)
	}

	log.Info("exported the ranking", zap.String("filename", csvFile))
	return nil
}

func filterMatches(matches []similarity.Match, threshold float64) []similarity.Match {
	if threshold < 0 {
		return matches
	}
	kept := matches[:0]
	for _, m := range matches {
		if m.Score >= threshold {
			kept = append(kept, m)
		}
	}
	return kept
}

func filterPairs(pairs []pipeline.Pair, threshold float64) []pipeline.Pair {
	if threshold < 0 {
		return pairs
	}
	kept := pairs[:0]
	for _, p := range pairs {
		if p.Score >= threshold {
			kept = append(kept, p)
		}
	}
	return kept
}

func docLabel(doc string) string {
	doc = strings.Join(strings.Fields(doc), " ")
	if len(doc) > 60 {
		return doc[:60] + "..."
	}
	return doc
}
