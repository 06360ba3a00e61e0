package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/breeew/aicare-api/internal/core/srv"
)

const (
	DEFAULT_ADDR            = ":8000"
	DEFAULT_DB_DRIVER       = "sqlite"
	DEFAULT_DB_DSN          = "./data/aicare.db"
	DEFAULT_JOURNAL_PATH    = "journal_entries.json"
	DEFAULT_RECORD_LOG_PATH = "./data/patient_records.log"
	DEFAULT_STATS_SPEC      = "@every 1m"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf, err := LoadBaseConfig(raw)
	if err != nil {
		panic(err)
	}
	return conf
}

func LoadBaseConfig(raw []byte) (CoreConfig, error) {
	var conf CoreConfig
	if err := toml.Unmarshal(raw, &conf); err != nil {
		return conf, err
	}
	conf.bytes = raw
	conf.AI.TokensFromENV()
	conf.SetDefaults()
	return conf, nil
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.SetDefaults()
	return c
}

type CoreConfig struct {
	Addr     string   `toml:"addr"`
	Log      Log      `toml:"log"`
	Database Database `toml:"database"`
	Storage  Storage  `toml:"storage"`

	AI srv.AIConfig `toml:"ai"`

	Prompt Prompt `toml:"prompt"`
	Limit  Limit  `toml:"limit"`

	Process Process `toml:"process"`

	bytes []byte
}

type Prompt struct {
	Summary string `toml:"summary"`
	Query   string `toml:"query"`
}

func (p *Prompt) FromENV() {
	p.Summary = os.Getenv("AICARE_API_PROMPT_SUMMARY")
	p.Query = os.Getenv("AICARE_API_PROMPT_QUERY")
}

// Limit holds per-minute request budgets of the model backed routes, 0 keeps the default.
type Limit struct {
	Summary int `toml:"summary"`
	Query   int `toml:"query"`
	Import  int `toml:"import"`
}

func (l *Limit) FromENV() {
	l.Summary, _ = strconv.Atoi(os.Getenv("AICARE_API_LIMIT_SUMMARY"))
	l.Query, _ = strconv.Atoi(os.Getenv("AICARE_API_LIMIT_QUERY"))
	l.Import, _ = strconv.Atoi(os.Getenv("AICARE_API_LIMIT_IMPORT"))
}

// Process configures the background jobs. RecordRetentionDays 0 keeps patient records forever.
type Process struct {
	StatsSpec           string `toml:"stats_spec"`
	RecordRetentionDays int    `toml:"record_retention_days"`
}

func (p *Process) FromENV() {
	p.StatsSpec = os.Getenv("AICARE_API_PROCESS_STATS_SPEC")
	p.RecordRetentionDays, _ = strconv.Atoi(os.Getenv("AICARE_API_PROCESS_RECORD_RETENTION_DAYS"))
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("AICARE_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Database.FromENV()
	c.Storage.FromENV()
	c.AI.FromENV()
	c.Prompt.FromENV()
	c.Limit.FromENV()
	c.Process.FromENV()
}

func (c *CoreConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DEFAULT_ADDR
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DEFAULT_DB_DRIVER
	}
	if c.Database.DSN == "" && c.Database.Driver == DEFAULT_DB_DRIVER {
		c.Database.DSN = DEFAULT_DB_DSN
	}
	if c.Storage.JournalPath == "" {
		c.Storage.JournalPath = DEFAULT_JOURNAL_PATH
	}
	if c.Storage.RecordLogPath == "" {
		c.Storage.RecordLogPath = DEFAULT_RECORD_LOG_PATH
	}
	if c.Process.StatsSpec == "" {
		c.Process.StatsSpec = DEFAULT_STATS_SPEC
	}
}

// CustomConfigPayload lets plugins decode their own section of the config file.
type CustomConfigPayload[T any] struct {
	CustomConfig T `toml:"custom_config"`
}

func NewCustomConfigPayload[T any]() CustomConfigPayload[T] {
	return CustomConfigPayload[T]{}
}

// LoadCustomConfig is a no-op when the config came from the environment.
func (c CoreConfig) LoadCustomConfig(obj any) error {
	if len(c.bytes) == 0 {
		return nil
	}
	return toml.Unmarshal(c.bytes, obj)
}

type Database struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

func (m *Database) FromENV() {
	m.Driver = os.Getenv("AICARE_API_DATABASE_DRIVER")
	m.DSN = os.Getenv("AICARE_API_DATABASE_DSN")
}

type Storage struct {
	JournalPath   string `toml:"journal_path"`
	RecordLogPath string `toml:"record_log_path"`
}

func (s *Storage) FromENV() {
	s.JournalPath = os.Getenv("AICARE_API_STORAGE_JOURNAL_PATH")
	s.RecordLogPath = os.Getenv("AICARE_API_STORAGE_RECORD_LOG_PATH")
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("AICARE_API_LOG_LEVEL")
	l.Path = os.Getenv("AICARE_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
