package v1

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/internal/core/srv"
	"github.com/breeew/aicare-api/pkg/ai"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/types"
	"github.com/breeew/aicare-api/pkg/utils"
)

type SummaryLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSummaryLogic(ctx context.Context, core *core.Core) *SummaryLogic {
	return &SummaryLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *SummaryLogic) Summarize(text string) (*types.SummaryResult, error) {
	prompt := lo.Ternary(l.core.Cfg().Prompt.Summary != "", l.core.Cfg().Prompt.Summary, ai.PROMPT_DOCTOR_SUMMARY_EN)

	reply, err := requestModel(l.core, l.core.Srv().AI().NewQuery(l.ctx, srv.USAGE_SUMMARIZE, []*types.MessageContext{
		{
			Role:    types.USER_ROLE_USER,
			Content: text,
		},
	}).WithPrompt(prompt).WithVar(ai.VAR_LANG, answerLang(text)), srv.USAGE_SUMMARIZE)
	if err != nil {
		return nil, errors.New("SummaryLogic.Summarize.Query", i18n.ERROR_AI_REQUEST, err)
	}

	res, err := ai.ParseSummaryAndQuestions(reply.Message())
	if err != nil {
		return nil, errors.New("SummaryLogic.Summarize.ParseSummaryAndQuestions", i18n.ERROR_AI_FORMAT, err)
	}
	return res, nil
}

// answerLang names the language the model should reply in, English when detection is unsure.
func answerLang(text string) string {
	lang := utils.DetectLang(text)
	if lang.Code == "" {
		return utils.DefaultLang.Name
	}
	return lang.Name
}

func requestModel(c *core.Core, opts *ai.QueryOptions, usage string) (ai.GenerateResponse, error) {
	start := time.Now()
	resp, err := opts.Query()
	c.Metrics().LLMLatency.WithLabelValues(usage).Observe(time.Since(start).Seconds())
	if err != nil {
		c.Metrics().LLMRequests.WithLabelValues(usage, "error").Inc()
		return resp, err
	}
	c.Metrics().LLMRequests.WithLabelValues(usage, "ok").Inc()

	attrs := []any{slog.String("usage", usage), slog.String("model", resp.Model)}
	if resp.Usage != nil {
		attrs = append(attrs, slog.Int("prompt_tokens", resp.Usage.PromptTokens), slog.Int("completion_tokens", resp.Usage.CompletionTokens))
	}
	slog.Debug("model request finished", attrs...)
	return resp, nil
}
