package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// GeminiLLM implements LLMClient via the openai-go SDK against an
// OpenAI-compatible chat completions endpoint. The default configuration
// points it at Gemini's compatibility layer; any compatible gateway works by
// changing the base URL.
type GeminiLLM struct {
	Model string
	Opts  []option.RequestOption
}

func NewGeminiLLM(cfg LLMSettings) (*GeminiLLM, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &GeminiLLM{Model: cfg.Model, Opts: opts}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(g.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
