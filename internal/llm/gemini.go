package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-resty/resty/v2"

	"github.com/mihikajadhav02/NiraCare/internal/config"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiModel calls the Gemini generateContent endpoint directly and
// satisfies eino's BaseChatModel so stages stay provider-agnostic.
type GeminiModel struct {
	client    *resty.Client
	modelName string
	apiKey    string
	maxTokens int
}

func NewGeminiModel(cfg *config.Config) *GeminiModel {
	baseURL := cfg.BackendURL
	if baseURL == "" {
		baseURL = geminiBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(time.Duration(cfg.TimeoutSecs) * time.Second)

	return &GeminiModel{
		client:    client,
		modelName: cfg.Model,
		apiKey:    cfg.GoogleAPIKey,
		maxTokens: cfg.MaxTokens,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"system_instruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one synchronous completion request. System messages become
// the system instruction; everything else is threaded into contents.
func (g *GeminiModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	req := geminiRequest{
		GenerationConfig: geminiGenerationConfig{MaxOutputTokens: g.maxTokens},
	}
	for _, msg := range input {
		switch msg.Role {
		case schema.System:
			req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: msg.Content}}}
		case schema.Assistant:
			req.Contents = append(req.Contents, geminiContent{Role: "model", Parts: []geminiPart{{Text: msg.Content}}})
		default:
			req.Contents = append(req.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: msg.Content}}})
		}
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", g.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(&req).
		Post(fmt.Sprintf("/models/%s:generateContent", g.modelName))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode(), resp.String())
	}

	var out geminiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("gemini API error %d: %s", out.Error.Code, out.Error.Message)
	}
	if len(out.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return schema.AssistantMessage(text.String(), nil), nil
}

// Stream satisfies BaseChatModel; the pipeline is fully synchronous so it
// wraps a single Generate result.
func (g *GeminiModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := g.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}
