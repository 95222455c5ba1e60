package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured fields from job descriptions and candidate texts",
	Run: func(cmd *cobra.Command, _ []string) {
		runExtract(cmd)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("job", "", "path to a job description text file")
	extractCmd.Flags().String("user", "", "path to a candidate resume or profile text file")
}

type extractResult struct {
	Job  *extract.JobFields  `json:"job,omitempty"`
	User *extract.UserFields `json:"user,omitempty"`
}

func runExtract(cmd *cobra.Command) {
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	cat, err := buildCatalog(config)
	if err != nil {
		log.Fatal("building term catalog", zap.Error(err))
	}

	extractor := extract.New(cat)

	var result extractResult

	if path := cmd.Flag("job").Value.String(); path != "" {
		text, err := readTextFile(path, "job description")
		if err != nil {
			log.Fatal("reading inputs", zap.Error(err))
		}
		fields := extractor.JobFields(text)
		result.Job = &fields
	}

	if path := cmd.Flag("user").Value.String(); path != "" {
		text, err := readTextFile(path, "candidate text")
		if err != nil {
			log.Fatal("reading inputs", zap.Error(err))
		}
		fields := extractor.UserFields(text)
		result.User = &fields
	}

	if result.Job == nil && result.User == nil {
		log.Fatal("nothing to extract", zap.String("hint", "pass --job and/or --user"))
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("encoding the result", zap.Error(err))
	}
	fmt.Println(string(pretty))
}
