package anthropic_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/aicare-api/pkg/ai"
	"github.com/breeew/aicare-api/pkg/ai/anthropic"
	"github.com/breeew/aicare-api/pkg/types"
)

func Test_Query(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_01","type":"message","role":"assistant","model":"claude-3-5-sonnet-20241022","stop_reason":"end_turn","content":[{"type":"text","text":"Summary:\n- fever\n\nQuestions:\n- duration?"}],"usage":{"input_tokens":12,"output_tokens":9}}`))
	}))
	defer srv.Close()

	d := anthropic.New("test-key", srv.URL, ai.ModelName{}, 0)
	res, err := ai.NewQueryOptions(context.Background(), d, []*types.MessageContext{
		{Role: types.USER_ROLE_USER, Content: "fever and headache for 2 days"},
	}).WithPrompt("be a doctor").Query()
	require.NoError(t, err)

	assert.Equal(t, "Summary:\n- fever\n\nQuestions:\n- duration?", res.Message())
	assert.Equal(t, 9, res.Usage.CompletionTokens)

	assert.Equal(t, anthropic.DEFAULT_MODEL, got["model"])
	assert.Equal(t, "claude-3-5-sonnet-20241022", res.Model)
	system, ok := got["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Equal(t, "be a doctor", system[0].(map[string]any)["text"])
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
	assert.Equal(t, float64(ai.DEFAULT_MAX_TOKENS), got["max_tokens"])
	assert.Equal(t, float64(1), got["temperature"])
}

func Test_QueryError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	d := anthropic.New("bad", srv.URL, ai.ModelName{}, 0)
	_, err := d.Query(context.Background(), ai.ChatRequest{
		Messages: []*types.MessageContext{{Role: types.USER_ROLE_USER, Content: "hi"}},
	})
	require.Error(t, err)

	var apiErr *sdk.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, 1, calls)
}
