package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/breeew/aicare-api/pkg/types"
)

const (
	DEFAULT_MAX_TOKENS  = 2000
	DEFAULT_TEMPERATURE = 1.0
)

type ModelName struct {
	ChatModel string
}

// ChatRequest is the driver-neutral shape of one completion call.
type ChatRequest struct {
	System      string
	Messages    []*types.MessageContext
	MaxTokens   int
	Temperature float32
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

type GenerateResponse struct {
	Received []string
	Model    string
	Usage    *Usage
}

func (r GenerateResponse) Message() string {
	return strings.Join(r.Received, "")
}

type Query interface {
	Query(ctx context.Context, req ChatRequest) (GenerateResponse, error)
}

type PassageInfo struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
}

func NewQueryOptions(ctx context.Context, driver Query, query []*types.MessageContext) *QueryOptions {
	return &QueryOptions{
		ctx:         ctx,
		_driver:     driver,
		query:       query,
		maxTokens:   DEFAULT_MAX_TOKENS,
		temperature: DEFAULT_TEMPERATURE,
		vars:        make(map[string]string),
	}
}

type OptionFunc func(opts *QueryOptions)

type QueryOptions struct {
	ctx          context.Context
	_driver      Query
	query        []*types.MessageContext
	docs         []*PassageInfo
	prompt       string
	docsSoltName string
	vars         map[string]string
	maxTokens    int
	temperature  float32
}

func (s *QueryOptions) WithDocs(docs []*PassageInfo) *QueryOptions {
	s.docs = docs
	return s
}

func (s *QueryOptions) WithPrompt(prompt string) *QueryOptions {
	s.prompt = strings.TrimSpace(prompt)
	return s
}

func (s *QueryOptions) WithDocsSoltName(name string) *QueryOptions {
	s.docsSoltName = name
	return s
}

// WithVar replaces every occurrence of key in the prompt with value.
func (s *QueryOptions) WithVar(key, value string) *QueryOptions {
	s.vars[key] = value
	return s
}

func (s *QueryOptions) WithMaxTokens(n int) *QueryOptions {
	if n > 0 {
		s.maxTokens = n
	}
	return s
}

func (s *QueryOptions) WithTemperature(t float32) *QueryOptions {
	if t > 0 {
		s.temperature = t
	}
	return s
}

func (s *QueryOptions) Apply(opts ...OptionFunc) *QueryOptions {
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *QueryOptions) System() string {
	prompt := s.prompt
	if s.docsSoltName != "" {
		prompt = strings.ReplaceAll(prompt, s.docsSoltName, FormatPassages(s.docs))
	}
	for k, v := range s.vars {
		prompt = strings.ReplaceAll(prompt, k, v)
	}
	return prompt
}

func (s *QueryOptions) Query() (GenerateResponse, error) {
	if s._driver == nil {
		return GenerateResponse{}, fmt.Errorf("no chat driver installed")
	}
	return s._driver.Query(s.ctx, ChatRequest{
		System:      s.System(),
		Messages:    s.query,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
}

func FormatPassages(docs []*PassageInfo) string {
	if len(docs) == 0 {
		return "(none)"
	}
	return strings.Join(lo.Map(docs, func(item *PassageInfo, _ int) string {
		if item.Source != "" {
			return fmt.Sprintf("[%s] (%s)\n%s", item.ID, item.Source, item.Content)
		}
		return fmt.Sprintf("[%s]\n%s", item.ID, item.Content)
	}), "\n\n")
}
