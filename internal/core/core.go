package core

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/breeew/aicare-api/internal/core/srv"
	"github.com/breeew/aicare-api/internal/store"
	"github.com/breeew/aicare-api/internal/store/filestore"
	"github.com/breeew/aicare-api/internal/store/sqlstore"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores    *sqlstore.Provider
	journal   *filestore.JournalStore
	recordLog *filestore.RecordLog

	metrics *Metrics
	Plugins
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core, err := NewCore(cfg)
	if err != nil {
		panic(err)
	}
	return core
}

// NewCore wires stores and services without touching the global logger.
func NewCore(cfg CoreConfig) (*Core, error) {
	cfg.SetDefaults()

	provider, err := sqlstore.Setup(sqlstore.ConnectConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return nil, err
	}

	core := &Core{
		cfg:       cfg,
		stores:    provider,
		journal:   filestore.NewJournalStore(cfg.Storage.JournalPath),
		recordLog: filestore.NewRecordLog(cfg.Storage.RecordLogPath),
		metrics:   NewMetrics("aicare_api", "core"),
	}

	// ai provider select
	core.srv = srv.SetupSrvs(srv.ApplyAI(cfg.AI))

	return core, nil
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores
}

func (s *Core) JournalStore() store.JournalStore {
	return s.journal
}

func (s *Core) RecordLog() store.RecordLog {
	return s.recordLog
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Close() error {
	if err := s.srv.Close(); err != nil {
		slog.Error("failed to close services", slog.String("error", err.Error()))
	}
	return s.stores.Close()
}
