package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/breeew/aicare-api/pkg/ai"
	"github.com/breeew/aicare-api/pkg/types"
)

const (
	NAME = "openai"
)

type Driver struct {
	client *openai.Client
	model  ai.ModelName
}

func New(token, proxy string, model ai.ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Name() string {
	return NAME
}

func (s *Driver) Query(ctx context.Context, req ai.ChatRequest) (ai.GenerateResponse, error) {
	messages := []openai.ChatCompletionMessage{}
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, lo.Map(req.Messages, func(item *types.MessageContext, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{
			Role:    item.Role.String(),
			Content: item.Content,
		}
	})...)

	completion := openai.ChatCompletionRequest{
		Model:       s.model.ChatModel,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	var result ai.GenerateResponse
	resp, err := s.client.CreateChatCompletion(ctx, completion)
	if err != nil {
		return result, fmt.Errorf("Completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("Completion error: no choices returned")
	}

	slog.Debug("Query", slog.String("driver", NAME), slog.String("model", s.model.ChatModel), slog.Int("completion_tokens", resp.Usage.CompletionTokens))

	result.Received = append(result.Received, resp.Choices[0].Message.Content)
	result.Model = resp.Model
	result.Usage = &ai.Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}
	return result, nil
}
