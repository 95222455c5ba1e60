package letter

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/covermatch/covermatch/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// GeminiGenerator drafts letters through a model client.
type GeminiGenerator struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewGeminiGenerator wraps a content generator. maxLogLength bounds the
// prompt/response previews written to the debug log.
func NewGeminiGenerator(generator contentGenerator, log *zap.Logger, maxLogLength int) *GeminiGenerator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GeminiGenerator{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Generate builds the drafting prompt and returns the model's letter.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return "", errors.New("letter: job description is required")
	}
	if strings.TrimSpace(req.CandidateText) == "" {
		return "", errors.New("letter: candidate text is required")
	}

	prompt := buildPrompt(req)

	g.logger.Debug("gemini draft request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, g.maxLogLen)),
	)

	raw, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	g.logger.Debug("gemini draft response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, g.maxLogLen)),
	)

	draft := strings.TrimSpace(raw)
	if draft == "" {
		return "", errors.New("letter: model returned an empty draft")
	}
	return draft, nil
}

func buildPrompt(req Request) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Job description:\n{{JOB_DESCRIPTION}}\n\nCandidate details:\n{{CANDIDATE}}\n\nCover letter:"
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = "the company"
	}

	prompt := strings.ReplaceAll(template, "{{JOB_DESCRIPTION}}", req.JobDescription)
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE}}", req.CandidateText)
	prompt = strings.ReplaceAll(prompt, "{{COMPANY}}", company)
	return prompt
}
