package cmd

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/match"
	"github.com/covermatch/covermatch/internal/similarity"
	"github.com/covermatch/covermatch/internal/textproc"
	"github.com/covermatch/covermatch/internal/vectorize"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how well a resume fits a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("resume", "", "path to the candidate resume text file")
	analyzeCmd.Flags().String("job", "", "path to the job description text file")
}

type similarityScores struct {
	Cosine   float64 `json:"cosine"`
	Jaccard  float64 `json:"jaccard"`
	Combined float64 `json:"combined"`
}

type analyzeResult struct {
	SimilarityScores similarityScores   `json:"similarity_scores"`
	ResumeMatch      *match.ResumeMatch `json:"resume_match"`
	Recommendations  []string           `json:"recommendations"`
}

func analyze(cmd *cobra.Command) {
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	cat, err := buildCatalog(config)
	if err != nil {
		log.Fatal("building term catalog", zap.Error(err))
	}

	weights, err := buildWeights(config)
	if err != nil {
		log.Fatal("building similarity weights", zap.Error(err))
	}

	engine, err := similarity.NewEngine(cat, weights)
	if err != nil {
		log.Fatal("building similarity engine", zap.Error(err))
	}

	scorer, err := match.NewScorer(cat, weights, log)
	if err != nil {
		log.Fatal("building the scorer", zap.Error(err))
	}

	resume, err := readTextFile(cmd.Flag("resume").Value.String(), "resume")
	if err != nil {
		log.Fatal("reading inputs", zap.Error(err))
	}

	job, err := readTextFile(cmd.Flag("job").Value.String(), "job description")
	if err != nil {
		log.Fatal("reading inputs", zap.Error(err))
	}

	result := analyzeResult{
		SimilarityScores: similarityScores{
			Cosine:   round3(pairCosine(resume, job, vectorizerOptions(config))),
			Jaccard:  round3(similarity.Jaccard(textproc.Tokens(resume), textproc.Tokens(job))),
			Combined: round3(engine.Combined(resume, job)),
		},
		ResumeMatch:     scorer.MatchResumeToJob(resume, job),
		Recommendations: scorer.RecommendImprovements(resume, job),
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("encoding the result", zap.Error(err))
	}
	fmt.Println(string(pretty))
}

// pairCosine fits a vectorizer on just the two documents so both vectors
// share one vocabulary.
func pairCosine(a, b string, opts vectorize.Options) float64 {
	v := vectorize.New(opts)
	vecs, err := v.FitTransform([]string{textproc.CleanDeep(a), textproc.CleanDeep(b)})
	if err != nil || len(vecs) != 2 {
		return 0
	}
	return similarity.Cosine(vecs[0], vecs[1])
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
