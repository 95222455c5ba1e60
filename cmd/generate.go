package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/ai/gemini"
	"github.com/covermatch/covermatch/internal/catalog"
	"github.com/covermatch/covermatch/internal/extract"
	"github.com/covermatch/covermatch/internal/letter"
	"github.com/covermatch/covermatch/internal/match"
	"github.com/covermatch/covermatch/internal/secrets"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter draft and score it against the job description",
	Run: func(cmd *cobra.Command, _ []string) {
		generate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("job", "", "path to the job description text file")
	generateCmd.Flags().String("candidate", "", "path to the candidate resume or profile text file")
	generateCmd.Flags().String("company", "", "company name used in the letter")
	generateCmd.Flags().Int64("seed", 0, "random seed for template generation (0 picks one)")
}

type generateResult struct {
	Letter string        `json:"letter"`
	Report *match.Report `json:"report"`
}

func generate(cmd *cobra.Command) {
	ctx := context.Background()
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	cat, err := buildCatalog(config)
	if err != nil {
		log.Fatal("building term catalog", zap.Error(err))
	}

	job, err := readTextFile(cmd.Flag("job").Value.String(), "job description")
	if err != nil {
		log.Fatal("reading inputs", zap.Error(err))
	}

	candidate, err := readTextFile(cmd.Flag("candidate").Value.String(), "candidate text")
	if err != nil {
		log.Fatal("reading inputs", zap.Error(err))
	}

	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		log.Fatal("reading the seed flag", zap.Error(err))
	}

	generator, err := buildGenerator(ctx, config, cat, seed, log)
	if err != nil {
		log.Fatal("building the letter generator", zap.Error(err))
	}

	draft, err := generator.Generate(ctx, letter.Request{
		JobDescription: job,
		CandidateText:  candidate,
		Company:        cmd.Flag("company").Value.String(),
	})
	if err != nil {
		log.Fatal("generating the letter", zap.Error(err))
	}

	scorer, err := buildScorer(config, log)
	if err != nil {
		log.Fatal("building the scorer", zap.Error(err))
	}

	result := generateResult{
		Letter: draft,
		Report: scorer.Score(draft, job, candidate),
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("encoding the result", zap.Error(err))
	}
	fmt.Println(string(pretty))
}

// buildGenerator picks the Gemini generator when ai.enabled is set and the
// template generator otherwise.
func buildGenerator(ctx context.Context, config *Config, cat *catalog.Catalog, seed int64, log *zap.Logger) (letter.Generator, error) {
	extractor := extract.New(cat)

	if config == nil || config.AI == nil || !config.AI.Enabled {
		if seed != 0 {
			return letter.NewTemplateGeneratorSeeded(extractor, seed), nil
		}
		return letter.NewTemplateGenerator(extractor), nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.AI.Provider)
	}
	if config.AI.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.AI.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := log.With(
		zap.String("provider", "gemini"),
		zap.String("model", config.AI.Gemini.Model),
		zap.Int("ai_retry_attempts", config.AI.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model, config.AI.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return letter.NewGeminiGenerator(generator, genLogger, config.AI.Gemini.MaxLogLength), nil
}
