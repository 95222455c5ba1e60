package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/match"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a cover letter against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("letter", "l", "", "path to the cover letter text file")
	scoreCmd.Flags().String("job", "", "path to the job description text file")
	scoreCmd.Flags().String("resume", "", "path to the candidate resume text file (optional)")
	scoreCmd.Flags().StringP("format", "o", "json", "output format: json or console")
}

func score(cmd *cobra.Command) {
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	scorer, err := buildScorer(config, log)
	if err != nil {
		log.Fatal("building the scorer", zap.Error(err))
	}

	letter, err := readTextFile(cmd.Flag("letter").Value.String(), "cover letter")
	if err != nil {
		log.Fatal("reading inputs", zap.Error(err))
	}

	job, err := readTextFile(cmd.Flag("job").Value.String(), "job description")
	if err != nil {
		log.Fatal("reading inputs", zap.Error(err))
	}

	resume := ""
	if path := cmd.Flag("resume").Value.String(); path != "" {
		if resume, err = readTextFile(path, "resume"); err != nil {
			log.Fatal("reading inputs", zap.Error(err))
		}
	}

	report := scorer.Score(letter, job, resume)

	switch cmd.Flag("format").Value.String() {
	case "console":
		printReport(report)
	default:
		pretty, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatal("encoding the report", zap.Error(err))
		}
		fmt.Println(string(pretty))
	}
}

func printReport(r *match.Report) {
	fmt.Printf("overall score: %.3f\n\n", r.OverallScore)

	metrics := make([]string, 0, len(r.DetailedAnalysis.MetricsBreakdown))
	for name := range r.DetailedAnalysis.MetricsBreakdown {
		metrics = append(metrics, name)
	}
	sort.Strings(metrics)
	for _, name := range metrics {
		fmt.Printf("  %-22s %s\n", name, r.DetailedAnalysis.MetricsBreakdown[name])
	}

	printList("strengths", r.DetailedAnalysis.Strengths)
	printList("weaknesses", r.DetailedAnalysis.Weaknesses)
	printList("recommendations", r.DetailedAnalysis.Recommendations)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
