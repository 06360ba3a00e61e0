package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadBaseConfig(t *testing.T) {
	raw := []byte(`
addr = ":9000"

[log]
level = "info"

[database]
driver = "sqlite"
dsn = "/tmp/test.db"

[ai]
max_tokens = 1000
timeout = 30

[ai.usage]
summarize = "anthropic"

[limit]
summary = 10

[custom_config.object_storage]
driver = "local"
`)
	cfg, err := LoadBaseConfig(raw)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/tmp/test.db", cfg.Database.DSN)
	assert.Equal(t, DEFAULT_JOURNAL_PATH, cfg.Storage.JournalPath)
	assert.Equal(t, DEFAULT_RECORD_LOG_PATH, cfg.Storage.RecordLogPath)
	assert.Equal(t, 1000, cfg.AI.MaxTokens)
	assert.Equal(t, 30, cfg.AI.Timeout)
	assert.Equal(t, "anthropic", cfg.AI.Usage["summarize"])
	assert.Equal(t, 10, cfg.Limit.Summary)

	type objectStorage struct {
		Driver string `toml:"driver"`
	}
	type custom struct {
		ObjectStorage objectStorage `toml:"object_storage"`
	}
	payload := NewCustomConfigPayload[custom]()
	require.NoError(t, cfg.LoadCustomConfig(&payload))
	assert.Equal(t, "local", payload.CustomConfig.ObjectStorage.Driver)
}

func Test_LoadBaseConfigTokenFromENV(t *testing.T) {
	t.Setenv("AICARE_API_AI_ANTHROPIC_TOKEN", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-from-env")
	t.Setenv("AICARE_API_AI_OPENAI_TOKEN", "sk-openai")
	t.Setenv("AICARE_API_AI_GEMINI_TOKEN", "")

	cfg, err := LoadBaseConfig([]byte("addr = \":9000\"\n[ai.usage]\nsummarize = \"anthropic\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.AI.Anthropic.Token)
	assert.Equal(t, "sk-openai", cfg.AI.Openai.Token)
	assert.Empty(t, cfg.AI.Gemini.Token)

	// a token written in the file wins over the environment
	cfg, err = LoadBaseConfig([]byte("[ai.anthropic]\ntoken = \"sk-from-file\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", cfg.AI.Anthropic.Token)
}

func Test_LoadBaseConfigFromENV(t *testing.T) {
	t.Setenv("AICARE_API_SERVICE_ADDRESS", "")
	t.Setenv("AICARE_API_DATABASE_DRIVER", "")
	t.Setenv("AICARE_API_DATABASE_DSN", "")
	t.Setenv("AICARE_API_STORAGE_JOURNAL_PATH", "/tmp/journal.json")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("AICARE_API_AI_ANTHROPIC_TOKEN", "")
	t.Setenv("AICARE_API_AI_TEMPERATURE", "0.7")
	t.Setenv("AICARE_API_PROCESS_STATS_SPEC", "")
	t.Setenv("AICARE_API_PROCESS_RECORD_RETENTION_DAYS", "30")

	cfg := LoadBaseConfigFromENV()
	assert.Equal(t, DEFAULT_ADDR, cfg.Addr)
	assert.Equal(t, DEFAULT_DB_DRIVER, cfg.Database.Driver)
	assert.Equal(t, DEFAULT_DB_DSN, cfg.Database.DSN)
	assert.Equal(t, "/tmp/journal.json", cfg.Storage.JournalPath)
	assert.Equal(t, "sk-test", cfg.AI.Anthropic.Token)
	assert.InDelta(t, 0.7, cfg.AI.Temperature, 0.0001)
	assert.Equal(t, DEFAULT_STATS_SPEC, cfg.Process.StatsSpec)
	assert.Equal(t, 30, cfg.Process.RecordRetentionDays)

	// nothing to decode when config came from the environment
	var payload CustomConfigPayload[map[string]any]
	assert.NoError(t, cfg.LoadCustomConfig(&payload))
	assert.Nil(t, payload.CustomConfig)
}

func Test_NewCore(t *testing.T) {
	dir := t.TempDir()
	cfg := CoreConfig{}
	cfg.Database.DSN = filepath.Join(dir, "aicare.db")
	cfg.Storage.JournalPath = filepath.Join(dir, "journal_entries.json")
	cfg.Storage.RecordLogPath = filepath.Join(dir, "patient_records.log")

	c, err := NewCore(cfg)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, DEFAULT_DB_DRIVER, c.Store().Driver())
	assert.NotNil(t, c.JournalStore())
	assert.NotNil(t, c.RecordLog())
	assert.NotNil(t, c.Metrics().Handler())
	assert.Empty(t, c.Srv().AI().Drivers())

	_, err = os.Stat(cfg.Database.DSN)
	assert.NoError(t, err)
}
