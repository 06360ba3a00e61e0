package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/breeew/aicare-api/pkg/ai"
	"github.com/breeew/aicare-api/pkg/types"
)

const (
	NAME = "gemini"

	DEFAULT_MODEL = "gemini-1.5-flash"
)

type Driver struct {
	client *genai.Client
	model  ai.ModelName
}

func New(ctx context.Context, token string, model ai.ModelName) (*Driver, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(token))
	if err != nil {
		return nil, fmt.Errorf("Failed to create gemini client: %w", err)
	}
	if model.ChatModel == "" {
		model.ChatModel = DEFAULT_MODEL
	}
	return &Driver{
		client: client,
		model:  model,
	}, nil
}

func (s *Driver) Name() string {
	return NAME
}

func (s *Driver) Close() error {
	return s.client.Close()
}

func (s *Driver) Query(ctx context.Context, req ai.ChatRequest) (ai.GenerateResponse, error) {
	var result ai.GenerateResponse

	model := s.client.GenerativeModel(s.model.ChatModel)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	model.SetTemperature(req.Temperature)

	session := model.StartChat()
	var last genai.Part
	for i, v := range req.Messages {
		if i == len(req.Messages)-1 {
			last = genai.Text(v.Content)
			break
		}
		role := "user"
		if v.Role == types.USER_ROLE_ASSISTANT {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(v.Content)},
		})
	}
	if last == nil {
		return result, fmt.Errorf("gemini: empty message list")
	}

	resp, err := session.SendMessage(ctx, last)
	if err != nil {
		return result, fmt.Errorf("Completion error: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	if sb.Len() == 0 {
		return result, fmt.Errorf("gemini: no text content returned")
	}

	slog.Debug("Query", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	result.Received = append(result.Received, sb.String())
	result.Model = s.model.ChatModel
	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	return result, nil
}
