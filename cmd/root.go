package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/catalog"
	"github.com/covermatch/covermatch/internal/logger"
	"github.com/covermatch/covermatch/internal/match"
	"github.com/covermatch/covermatch/internal/similarity"
	"github.com/covermatch/covermatch/internal/vectorize"
)

const (
	app = "covermatch"
)

type Config struct {
	Normalize  *NormalizeConfig  `mapstructure:"normalize"`
	Vectorizer *VectorizerConfig `mapstructure:"vectorizer"`
	Similarity *SimilarityConfig `mapstructure:"similarity"`
	Catalog    map[string]any    `mapstructure:"catalog"`
	AI         *AIConfig         `mapstructure:"ai"`
}

type NormalizeConfig struct {
	Deep bool `mapstructure:"deep"`
}

type VectorizerConfig struct {
	MaxFeatures int     `mapstructure:"max-features"`
	MinDF       int     `mapstructure:"min-df"`
	MaxDF       float64 `mapstructure:"max-df"`
}

type SimilarityConfig struct {
	Weights map[string]any `mapstructure:"weights"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "covermatch scores cover letters against job descriptions and ranks whole corpora of them",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is covermatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The default config file is optional, an explicitly given one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func buildCatalog(config *Config) (*catalog.Catalog, error) {
	if config == nil || len(config.Catalog) == 0 {
		return catalog.Default(), nil
	}
	return catalog.FromConfig(config.Catalog)
}

func buildWeights(config *Config) (similarity.Weights, error) {
	if config == nil || config.Similarity == nil || len(config.Similarity.Weights) == 0 {
		return similarity.DefaultWeights, nil
	}
	return similarity.WeightsFromMap(config.Similarity.Weights)
}

func buildScorer(config *Config, log *zap.Logger) (*match.Scorer, error) {
	cat, err := buildCatalog(config)
	if err != nil {
		return nil, fmt.Errorf("building term catalog: %w", err)
	}

	weights, err := buildWeights(config)
	if err != nil {
		return nil, fmt.Errorf("building similarity weights: %w", err)
	}

	return match.NewScorer(cat, weights, log)
}

func vectorizerOptions(config *Config) vectorize.Options {
	var opts vectorize.Options
	if config == nil || config.Vectorizer == nil {
		return opts
	}
	opts.MaxFeatures = config.Vectorizer.MaxFeatures
	opts.MinDF = config.Vectorizer.MinDF
	opts.MaxDF = config.Vectorizer.MaxDF
	return opts
}

func readTextFile(path, what string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("%s file is required", what)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s from %q: %w", what, path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%s file %q is empty", what, path)
	}
	return text, nil
}
