package anthropic

// provider for https://www.anthropic.com/
// messages api only

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/samber/lo"

	"github.com/breeew/aicare-api/pkg/ai"
	"github.com/breeew/aicare-api/pkg/types"
)

const (
	NAME = "anthropic"

	DEFAULT_ENDPOINT = "https://api.anthropic.com"
	DEFAULT_MODEL    = "claude-3-5-sonnet-20241022"
)

type Driver struct {
	client anthropic.Client
	model  ai.ModelName
}

// New builds a driver. timeout 0 means no client side timeout. Failed calls are not retried.
func New(token, endpoint string, model ai.ModelName, timeout time.Duration) *Driver {
	if endpoint == "" {
		endpoint = DEFAULT_ENDPOINT
	}
	if model.ChatModel == "" {
		model.ChatModel = DEFAULT_MODEL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(token),
		option.WithBaseURL(endpoint),
		option.WithMaxRetries(0),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	return &Driver{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (s *Driver) Name() string {
	return NAME
}

func convertMessage(item *types.MessageContext, _ int) anthropic.MessageParam {
	if item.Role == types.USER_ROLE_ASSISTANT {
		return anthropic.NewAssistantMessage(anthropic.NewTextBlock(item.Content))
	}
	return anthropic.NewUserMessage(anthropic.NewTextBlock(item.Content))
}

func (s *Driver) Query(ctx context.Context, req ai.ChatRequest) (ai.GenerateResponse, error) {
	var result ai.GenerateResponse

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = ai.DEFAULT_MAX_TOKENS
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(s.model.ChatModel),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(float64(req.Temperature)),
		Messages:    lo.Map(req.Messages, convertMessage),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return result, fmt.Errorf("Failed to request anthropic: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			result.Received = append(result.Received, block.Text)
		}
	}
	if len(result.Received) == 0 {
		return result, fmt.Errorf("anthropic: no text content returned")
	}

	slog.Debug("Query", slog.String("driver", NAME), slog.String("model", s.model.ChatModel), slog.Int64("output_tokens", resp.Usage.OutputTokens))

	result.Model = string(resp.Model)
	result.Usage = &ai.Usage{
		PromptTokens:     int(resp.Usage.InputTokens),
		CompletionTokens: int(resp.Usage.OutputTokens),
	}
	return result, nil
}
