package plugins

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/utils"
)

type SelfHostCustomConfig struct {
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`
}

var _ core.Plugins = (*SelfHostPlugin)(nil)

func newSelfHostMode() *SelfHostPlugin {
	return &SelfHostPlugin{
		limiter: make(map[string]*rate.Limiter),
	}
}

type SelfHostPlugin struct {
	core *core.Core
	core.FileStorage

	mu      sync.Mutex
	limiter map[string]*rate.Limiter

	customConfig SelfHostCustomConfig
}

func (s *SelfHostPlugin) Name() string {
	return "selfhost"
}

func (s *SelfHostPlugin) Install(c *core.Core) error {
	s.core = c
	utils.SetupIDWorker(1)

	customConfig := core.NewCustomConfigPayload[SelfHostCustomConfig]()
	if err := c.Cfg().LoadCustomConfig(&customConfig); err != nil {
		return fmt.Errorf("Failed to install custom config, %w", err)
	}
	s.customConfig = customConfig.CustomConfig
	if s.customConfig.ObjectStorage.Driver == "" {
		s.customConfig.ObjectStorage.FromENV()
	}

	fs, err := SetupObjectStorage(s.customConfig.ObjectStorage)
	if err != nil {
		return fmt.Errorf("Failed to install object storage, %w", err)
	}
	s.FileStorage = fs

	slog.Info("plugins installed",
		slog.String("mode", s.Name()),
		slog.String("object_storage", s.customConfig.ObjectStorage.Driver),
		slog.Any("ai_drivers", c.Srv().AI().Drivers()))
	return nil
}

// UseLimiter hands out one limiter per key. The rate is a per-minute budget taken from
// the limit config for method, falling back to defaultRatelimit.
func (s *SelfHostPlugin) UseLimiter(key string, method string, defaultRatelimit int) core.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, exist := s.limiter[key]
	if !exist {
		perMinute := s.ratelimitOf(method, defaultRatelimit)
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute*2)
		s.limiter[key] = l
	}

	return l
}

func (s *SelfHostPlugin) ratelimitOf(method string, defaultRatelimit int) int {
	var n int
	if s.core != nil {
		limit := s.core.Cfg().Limit
		switch method {
		case "summary":
			n = limit.Summary
		case "query":
			n = limit.Query
		case "import":
			n = limit.Import
		}
	}
	if n <= 0 {
		n = defaultRatelimit
	}
	if n <= 0 {
		n = 1
	}
	return n
}

func (s *SelfHostPlugin) FileUploader() core.FileStorage {
	return s.FileStorage
}
