package srv

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/breeew/aicare-api/pkg/ai"
	"github.com/breeew/aicare-api/pkg/ai/anthropic"
	"github.com/breeew/aicare-api/pkg/ai/gemini"
	"github.com/breeew/aicare-api/pkg/ai/openai"
	"github.com/breeew/aicare-api/pkg/types"
)

const (
	USAGE_SUMMARIZE = "summarize"
	USAGE_QUERY     = "query"
)

type ChatAI interface {
	ai.Query
	Name() string
}

type AIConfig struct {
	Anthropic Anthropic `toml:"anthropic"`
	Openai    Openai    `toml:"openai"`
	Gemini    Gemini    `toml:"gemini"`

	MaxTokens   int     `toml:"max_tokens"`
	Temperature float32 `toml:"temperature"`
	// seconds, 0 means the request context alone bounds the call
	Timeout int `toml:"timeout"`
	// Usage list
	// summarize
	// query
	Usage map[string]string `toml:"usage"`
}

func (c *AIConfig) FromENV() {
	c.Usage = make(map[string]string)
	c.Usage[USAGE_SUMMARIZE] = os.Getenv("AICARE_API_AI_USAGE_SUMMARIZE")
	c.Usage[USAGE_QUERY] = os.Getenv("AICARE_API_AI_USAGE_QUERY")

	c.MaxTokens, _ = strconv.Atoi(os.Getenv("AICARE_API_AI_MAX_TOKENS"))
	if t, err := strconv.ParseFloat(os.Getenv("AICARE_API_AI_TEMPERATURE"), 32); err == nil {
		c.Temperature = float32(t)
	}
	c.Timeout, _ = strconv.Atoi(os.Getenv("AICARE_API_AI_TIMEOUT"))

	c.Anthropic.FromENV()
	c.Openai.FromENV()
	c.Gemini.FromENV()
}

// TokensFromENV fills driver tokens the config file left empty from the environment.
func (c *AIConfig) TokensFromENV() {
	c.Anthropic.Token = firstNotEmpty(c.Anthropic.Token, os.Getenv("AICARE_API_AI_ANTHROPIC_TOKEN"), os.Getenv("ANTHROPIC_API_KEY"))
	c.Openai.Token = firstNotEmpty(c.Openai.Token, os.Getenv("AICARE_API_AI_OPENAI_TOKEN"))
	c.Gemini.Token = firstNotEmpty(c.Gemini.Token, os.Getenv("AICARE_API_AI_GEMINI_TOKEN"))
}

type Anthropic struct {
	Token     string `toml:"token"`
	Endpoint  string `toml:"endpoint"`
	ChatModel string `toml:"chat_model"`
}

func (c *Anthropic) FromENV() {
	c.Token = firstNotEmpty(os.Getenv("AICARE_API_AI_ANTHROPIC_TOKEN"), os.Getenv("ANTHROPIC_API_KEY"))
	c.Endpoint = os.Getenv("AICARE_API_AI_ANTHROPIC_ENDPOINT")
	c.ChatModel = os.Getenv("AICARE_API_AI_ANTHROPIC_CHAT_MODEL")
}

func (cfg *Anthropic) Install(root *AI) {
	if cfg.Token == "" {
		return
	}
	root.Install(anthropic.NAME, anthropic.New(cfg.Token, cfg.Endpoint, ai.ModelName{
		ChatModel: cfg.ChatModel,
	}, 0))
}

type Openai struct {
	Token     string `toml:"token"`
	Endpoint  string `toml:"endpoint"`
	ChatModel string `toml:"chat_model"`
}

func (c *Openai) FromENV() {
	c.Token = os.Getenv("AICARE_API_AI_OPENAI_TOKEN")
	c.Endpoint = os.Getenv("AICARE_API_AI_OPENAI_ENDPOINT")
	c.ChatModel = os.Getenv("AICARE_API_AI_OPENAI_CHAT_MODEL")
}

func (cfg *Openai) Install(root *AI) {
	if cfg.Token == "" {
		return
	}
	root.Install(openai.NAME, openai.New(cfg.Token, cfg.Endpoint, ai.ModelName{
		ChatModel: cfg.ChatModel,
	}))
}

type Gemini struct {
	Token     string `toml:"token"`
	ChatModel string `toml:"chat_model"`
}

func (c *Gemini) FromENV() {
	c.Token = os.Getenv("AICARE_API_AI_GEMINI_TOKEN")
	c.ChatModel = os.Getenv("AICARE_API_AI_GEMINI_CHAT_MODEL")
}

func (cfg *Gemini) Install(root *AI) {
	if cfg.Token == "" {
		return
	}
	d, err := gemini.New(context.Background(), cfg.Token, ai.ModelName{
		ChatModel: cfg.ChatModel,
	})
	if err != nil {
		slog.Error("failed to install gemini driver", slog.String("error", err.Error()))
		return
	}
	root.Install(gemini.NAME, d)
	root.closers = append(root.closers, d)
}

type AI struct {
	chatDrivers map[string]ChatAI
	installed   []string
	chatUsage   map[string]ChatAI
	chatDefault ChatAI

	maxTokens   int
	temperature float32
	timeout     time.Duration

	closers []io.Closer
}

func NewAI(maxTokens int, temperature float32, timeout time.Duration) *AI {
	return &AI{
		chatDrivers: make(map[string]ChatAI),
		chatUsage:   make(map[string]ChatAI),
		maxTokens:   lo.Ternary(maxTokens > 0, maxTokens, ai.DEFAULT_MAX_TOKENS),
		temperature: lo.Ternary(temperature > 0, temperature, float32(ai.DEFAULT_TEMPERATURE)),
		timeout:     timeout,
	}
}

// Install registers a driver. The first installed driver becomes the default.
func (s *AI) Install(name string, driver ChatAI) {
	if driver == nil {
		return
	}
	if _, exist := s.chatDrivers[name]; !exist {
		s.installed = append(s.installed, name)
	}
	s.chatDrivers[name] = driver
	if s.chatDefault == nil {
		s.chatDefault = driver
	}
}

func (s *AI) SetUsage(usage, name string) {
	if d, ok := s.chatDrivers[name]; ok {
		s.chatUsage[usage] = d
	}
}

func (s *AI) Drivers() []string {
	return s.installed
}

// Driver resolves the driver serving usage, nil when none is installed.
func (s *AI) Driver(usage string) ChatAI {
	if d := s.chatUsage[usage]; d != nil {
		return d
	}
	return s.chatDefault
}

func (s *AI) NewQuery(ctx context.Context, usage string, query []*types.MessageContext) *ai.QueryOptions {
	var driver ai.Query
	if d := s.Driver(usage); d != nil {
		driver = &boundedQuery{driver: d, timeout: s.timeout}
	}
	return ai.NewQueryOptions(ctx, driver, query).
		WithMaxTokens(s.maxTokens).
		WithTemperature(s.temperature)
}

func (s *AI) Close() error {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

type boundedQuery struct {
	driver  ai.Query
	timeout time.Duration
}

func (q *boundedQuery) Query(ctx context.Context, req ai.ChatRequest) (ai.GenerateResponse, error) {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	return q.driver.Query(ctx, req)
}

func SetupAI(cfg AIConfig) *AI {
	a := NewAI(cfg.MaxTokens, cfg.Temperature, time.Duration(cfg.Timeout)*time.Second)

	cfg.Anthropic.Install(a)
	cfg.Openai.Install(a)
	cfg.Gemini.Install(a)

	for k, v := range cfg.Usage {
		if v != "" {
			a.SetUsage(k, v)
		}
	}

	if a.chatDefault == nil {
		slog.Warn("no chat driver configured, model backed operations will fail")
	}
	return a
}

func firstNotEmpty(list ...string) string {
	for _, v := range list {
		if v != "" {
			return v
		}
	}
	return ""
}
