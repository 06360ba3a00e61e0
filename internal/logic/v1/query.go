package v1

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/internal/core/srv"
	"github.com/breeew/aicare-api/pkg/ai"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/types"
)

var querySetting = []ai.OptionFunc{
	func(opts *ai.QueryOptions) {
		opts.WithDocsSoltName(ai.VAR_RELEVANT_PASSAGE)
	},
}

type QueryLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewQueryLogic(ctx context.Context, core *core.Core) *QueryLogic {
	return &QueryLogic{
		ctx:  ctx,
		core: core,
	}
}

// Query answers a free-text question grounded on the assembled context.
func (l *QueryLogic) Query(query string, limit int) (*types.QueryResult, error) {
	bundle, err := NewContextLogic(l.ctx, l.core).Assemble(query, limit)
	if err != nil {
		return nil, errors.Trace("QueryLogic.Query", err)
	}

	prompt := lo.Ternary(l.core.Cfg().Prompt.Query != "", l.core.Cfg().Prompt.Query, ai.PROMPT_QUERY_EN)
	history := lo.Ternary(bundle.History != "", bundle.History, "(none)")

	opts := l.core.Srv().AI().NewQuery(l.ctx, srv.USAGE_QUERY, []*types.MessageContext{
		{
			Role:    types.USER_ROLE_USER,
			Content: query,
		},
	}).WithPrompt(prompt).
		Apply(querySetting...).
		WithDocs(QAToPassages(bundle.QA)).
		WithVar(ai.VAR_HISTORY, history).
		WithVar(ai.VAR_LANG, answerLang(query))

	reply, err := requestModel(l.core, opts, srv.USAGE_QUERY)
	if err != nil {
		return nil, errors.New("QueryLogic.Query.Query", i18n.ERROR_AI_REQUEST, err)
	}

	return &types.QueryResult{
		Response: reply.Message(),
		Context:  bundle,
	}, nil
}

func QAToPassages(list []types.MedicalQA) []*ai.PassageInfo {
	return lo.Map(list, func(item types.MedicalQA, i int) *ai.PassageInfo {
		id := item.QuestionID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		return &ai.PassageInfo{
			ID:      id,
			Content: fmt.Sprintf("Question: %s\nAnswer: %s", item.Question, item.Answer),
			Source:  item.Source,
		}
	})
}
