package v1_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/internal/plugins"
	"github.com/breeew/aicare-api/pkg/ai"
)

var ctx = context.Background()

type fakeChat struct {
	reply    string
	err      error
	requests []ai.ChatRequest
}

func (f *fakeChat) Name() string {
	return "fake"
}

func (f *fakeChat) Query(_ context.Context, req ai.ChatRequest) (ai.GenerateResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return ai.GenerateResponse{}, f.err
	}
	return ai.GenerateResponse{Received: []string{f.reply}, Model: "fake-model"}, nil
}

func (f *fakeChat) last() ai.ChatRequest {
	return f.requests[len(f.requests)-1]
}

const testReply = "Summary:\n- fever\n- headache\n\nQuestions:\n- duration?\n- severity?"

func setupCore(t *testing.T) (*core.Core, *fakeChat) {
	dir := t.TempDir()
	cfg := core.CoreConfig{}
	cfg.Database.DSN = filepath.Join(dir, "aicare.db")
	cfg.Storage.JournalPath = filepath.Join(dir, "journal_entries.json")
	cfg.Storage.RecordLogPath = filepath.Join(dir, "patient_records.log")

	c, err := core.NewCore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
	})
	require.NoError(t, plugins.Setup(c.InstallPlugins, "selfhost"))

	chat := &fakeChat{reply: testReply}
	c.Srv().AI().Install(chat.Name(), chat)
	return c, chat
}

func medquadDocument(id, focus string, pairs ...[3]string) string {
	body := ""
	for i, p := range pairs {
		body += fmt.Sprintf(`<QAPair pid="%d"><Question qid="%s-%d" qtype="%s">%s</Question><Answer>%s</Answer></QAPair>`, i+1, id, i+1, p[0], p[1], p[2])
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?><Document id="%s" source="GHR" url="https://example.org"><Focus>%s</Focus><QAPairs>%s</QAPairs></Document>`, id, focus, body)
}
