package v1_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/pkg/medquad"
)

func Test_KnowledgeImport(t *testing.T) {
	c, _ := setupCore(t)
	logic := v1.NewKnowledgeLogic(ctx, c)

	doc := medquadDocument("0000001", "Diabetes",
		[3]string{"information", "What is diabetes ?", "A chronic disease."},
		[3]string{"symptoms", "What are the symptoms of diabetes ?", "Thirst and fatigue."},
	)
	n, err := logic.Import(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// a pair without an answer is skipped
	partial := `<Document id="0000002" source="GHR"><Focus>Asthma</Focus><QAPairs>
<QAPair pid="1"><Question qid="0000002-1" qtype="symptoms">What are the symptoms of asthma ?</Question><Answer>Wheezing.</Answer></QAPair>
<QAPair pid="2"><Question qid="0000002-2" qtype="treatment">How to treat asthma ?</Question></QAPair>
</QAPairs></Document>`
	n, err = logic.Import(strings.NewReader(partial))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	total, err := c.Store().MedicalQAStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func Test_KnowledgeImportIsAtomic(t *testing.T) {
	c, _ := setupCore(t)
	logic := v1.NewKnowledgeLogic(ctx, c)

	_, err := logic.Import(strings.NewReader(medquadDocument("0000001", "Diabetes",
		[3]string{"information", "What is diabetes ?", "A chronic disease."},
	)))
	require.NoError(t, err)

	// 0000001-1 collides, nothing from this document may be stored
	_, err = logic.Import(strings.NewReader(medquadDocument("0000001", "Diabetes",
		[3]string{"information", "What is diabetes ?", "A chronic disease."},
		[3]string{"symptoms", "What are the symptoms of diabetes ?", "Thirst and fatigue."},
	)))
	require.Error(t, err)

	total, err := c.Store().MedicalQAStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func Test_KnowledgeImportMalformed(t *testing.T) {
	c, _ := setupCore(t)

	_, err := v1.NewKnowledgeLogic(ctx, c).Import(strings.NewReader("<Document><QAPairs>"))
	require.Error(t, err)

	var pe *medquad.ParseError
	assert.True(t, errors.As(err, &pe))

	// a complete document followed by junk must not commit its rows
	doc := medquadDocument("0000003", "Asthma", [3]string{"information", "What is asthma ?", "A disease of the airways."})
	_, err = v1.NewKnowledgeLogic(ctx, c).Import(strings.NewReader(doc + "<QAPair><Question>"))
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))

	total, err := c.Store().MedicalQAStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func Test_KnowledgeSearch(t *testing.T) {
	c, _ := setupCore(t)
	logic := v1.NewKnowledgeLogic(ctx, c)

	pairs := make([][3]string, 0, 12)
	for i := 0; i < 12; i++ {
		pairs = append(pairs, [3]string{"symptoms", "What are the symptoms of diabetes ?", "Thirst."})
	}
	_, err := logic.Import(strings.NewReader(medquadDocument("0000001", "Diabetes", pairs...)))
	require.NoError(t, err)
	_, err = logic.Import(strings.NewReader(medquadDocument("0000002", "Diabetes",
		[3]string{"information", "What is diabetes ?", "A chronic disease."},
	)))
	require.NoError(t, err)

	res, err := logic.Search("diabetes", "symptoms")
	require.NoError(t, err)
	assert.Len(t, res, 10)
	for _, v := range res {
		assert.Equal(t, "symptoms", v.QuestionType)
	}

	res, err = logic.Search("diabetes", "information")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "0000002-1", res[0].QuestionID)

	res, err = logic.Search("measles", "")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
