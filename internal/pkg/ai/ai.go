// Package ai turns rough project copy into polished copy through an
// LLM provider. The enhancer is best effort: any failure, including a
// missing API key, falls back to the caller's input.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/gigspace/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"
	"go.uber.org/zap"
)

// Enhancer rewrites project descriptions and suggests tags.
type Enhancer struct {
	cfg config.AIConfig
	log *zap.Logger
}

func New(cfg config.AIConfig, log *zap.Logger) *Enhancer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Enhancer{cfg: cfg, log: log}
}

// Enabled reports whether a provider API key is configured.
func (e *Enhancer) Enabled() bool { return strings.TrimSpace(e.cfg.APIKey) != "" }

// EnhanceDescription rewrites a raw project description. On any failure
// the original text comes back unchanged.
func (e *Enhancer) EnhanceDescription(ctx context.Context, raw string) string {
	if !e.Enabled() {
		return raw
	}
	prompt := fmt.Sprintf(`You are an expert copywriter for a high-end design and tech portfolio.
Rewrite the following project description to be professional, concise, and impactful.
Focus on value, clarity, and a sophisticated tone. Keep it under 50 words.

Raw Description: %q`, raw)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		e.log.Warn("description enhancement failed, keeping original", zap.Error(err))
		return raw
	}
	return strings.TrimSpace(text)
}

// SuggestTags proposes 3-5 short tags for a project. Failures yield an
// empty list.
func (e *Enhancer) SuggestTags(ctx context.Context, title, description string) []string {
	if !e.Enabled() {
		return nil
	}
	prompt := fmt.Sprintf(`Generate 3-5 short, relevant technical or design tags for a project with
Title: %q and Description: %q.
Return ONLY a comma-separated list of tags. No other text.
Example output: React, UX Design, API`, title, description)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		e.log.Warn("tag suggestion failed", zap.Error(err))
		return nil
	}

	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (e *Enhancer) generate(ctx context.Context, prompt string) (string, error) {
	model, err := e.buildLanguageModel()
	if err != nil {
		return "", err
	}
	resp, err := jetai.GenerateText(
		ctx,
		[]jetapi.Message{&jetapi.UserMessage{Content: jetapi.ContentFromText(prompt)}},
		jetai.WithModel(model),
		jetai.WithMaxOutputTokens(300),
	)
	if err != nil {
		return "", err
	}
	return extractText(resp)
}

func (e *Enhancer) buildLanguageModel() (jetapi.LanguageModel, error) {
	apiKey := strings.TrimSpace(e.cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("ai provider api key is empty")
	}

	modelID := strings.TrimSpace(e.cfg.Model)
	endpoint := strings.TrimSpace(e.cfg.Endpoint)

	if strings.EqualFold(strings.TrimSpace(e.cfg.Provider), "anthropic") {
		if modelID == "" {
			modelID = "claude-haiku-4-5-20251001"
		}
		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(apiKey),
			anthropicoption.WithMaxRetries(0),
		}
		if endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}
		client := anthropicclient.NewClient(opts...)
		return jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client)), nil
	}

	if modelID == "" {
		modelID = "gpt-4o-mini"
	}
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if endpoint != "" {
		opts = append(opts, openaioption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	client := openaiclient.NewClient(opts...)
	return jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client)), nil
}

func extractText(resp *jetapi.Response) (string, error) {
	if resp == nil {
		return "", errors.New("empty response from AI")
	}
	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}
	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from AI")
	}
	return text, nil
}
