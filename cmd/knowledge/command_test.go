package knowledge

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/aicare-api/internal/core"
)

const document = `<?xml version="1.0" encoding="UTF-8"?>
<Document id="0000002" source="GHR" url="https://ghr.nlm.nih.gov/condition/asthma">
  <Focus>Asthma</Focus>
  <QAPairs>
    <QAPair pid="1">
      <Question qid="0000002-1" qtype="information">What is asthma ?</Question>
      <Answer>Asthma is a disease of the airways.</Answer>
    </QAPair>
  </QAPairs>
</Document>`

func setupCore(t *testing.T) *core.Core {
	dir := t.TempDir()
	cfg := core.CoreConfig{}
	cfg.Database.DSN = filepath.Join(dir, "aicare.db")
	cfg.Storage.JournalPath = filepath.Join(dir, "journal_entries.json")
	cfg.Storage.RecordLogPath = filepath.Join(dir, "patient_records.log")

	app, err := core.NewCore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		app.Close()
	})
	return app
}

func Test_ImportCommand(t *testing.T) {
	app := setupCore(t)
	path := filepath.Join(t.TempDir(), "0000002.xml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	n, err := importFile(context.Background(), app, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = importFile(context.Background(), app, filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func Test_NewCommand(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	names := []string{}
	for _, v := range cmd.Commands() {
		names = append(names, v.Name())
	}
	assert.ElementsMatch(t, []string{"import", "watch"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func Test_Watch(t *testing.T) {
	app := setupCore(t)
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, app, dir, 50*time.Millisecond)
	}()

	// give the watcher time to register dir
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0000002.xml"), []byte(document), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	assert.Eventually(t, func() bool {
		total, err := app.Store().MedicalQAStore().Total(context.Background())
		return err == nil && total == 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
