// Package ai talks to the generative language model behind the handwerker assistant.
package ai

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"werkstatt/domain"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

// modelClient is the part of *genai.Models the assistant relies on.
type modelClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// GeminiConfig holds the generation parameters sent with every request.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
	MaxHistory      int
}

// GeminiAssistant implements Assistant with Google GenAI Gemini.
type GeminiAssistant struct {
	models     modelClient
	model      string
	config     *genai.GenerateContentConfig
	maxHistory int
	log        *slog.Logger
}

func NewGeminiAssistant(ctx context.Context, cfg GeminiConfig, log *slog.Logger) (*GeminiAssistant, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return newGeminiAssistant(client.Models, cfg, log), nil
}

func newGeminiAssistant(models modelClient, cfg GeminiConfig, log *slog.Logger) *GeminiAssistant {
	return &GeminiAssistant{
		models:     models,
		model:      lo.Ternary(cfg.Model == "", "gemini-2.0-flash", cfg.Model),
		config:     generationConfig(cfg),
		maxHistory: cfg.MaxHistory,
		log:        log,
	}
}

func generationConfig(cfg GeminiConfig) *genai.GenerateContentConfig {
	threshold := genai.HarmBlockThresholdBlockMediumAndAbove
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		Temperature:       lo.ToPtr(cfg.Temperature),
		TopP:              lo.ToPtr(cfg.TopP),
		TopK:              lo.ToPtr(cfg.TopK),
		MaxOutputTokens:   cfg.MaxOutputTokens,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: threshold},
			{Category: genai.HarmCategoryHateSpeech, Threshold: threshold},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: threshold},
			{Category: genai.HarmCategoryDangerousContent, Threshold: threshold},
		},
	}
}

// Stream forwards the conversation and yields each non-empty text chunk as it arrives.
func (g *GeminiAssistant) Stream(ctx context.Context, history []domain.ChatMessage) iter.Seq2[string, error] {
	contents := g.contents(history)
	return func(yield func(string, error) bool) {
		if len(contents) == 0 {
			yield("", fmt.Errorf("no user message to send"))
			return
		}
		chunks := 0
		for resp, err := range g.models.GenerateContentStream(ctx, g.model, contents, g.config) {
			if err != nil {
				g.log.Warn("Gemini stream failed", "model", g.model, "chunks", chunks, "error", err)
				yield("", fmt.Errorf("gemini stream failed: %w", err))
				return
			}
			text := responseText(resp)
			if text == "" {
				continue
			}
			chunks++
			if !yield(text, nil) {
				return
			}
		}
		g.log.Debug("Gemini stream finished", "model", g.model, "chunks", chunks)
	}
}

func (g *GeminiAssistant) Complete(ctx context.Context, history []domain.ChatMessage) (string, error) {
	contents := g.contents(history)
	if len(contents) == 0 {
		return "", fmt.Errorf("no user message to send")
	}
	resp, err := g.models.GenerateContent(ctx, g.model, contents, g.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from gemini")
	}
	return text, nil
}

func (g *GeminiAssistant) contents(history []domain.ChatMessage) []*genai.Content {
	return lo.Map(TrimHistory(history, g.maxHistory), func(m domain.ChatMessage, _ int) *genai.Content {
		role := genai.Role(genai.RoleUser)
		if m.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		return genai.NewContentFromText(m.Content, role)
	})
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
