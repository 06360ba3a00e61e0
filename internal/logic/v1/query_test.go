package v1_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/pkg/types"
)

func Test_ContextAssemble(t *testing.T) {
	c, _ := setupCore(t)

	_, err := v1.NewKnowledgeLogic(ctx, c).Import(strings.NewReader(medquadDocument("0000001", "Diabetes",
		[3]string{"information", "What is diabetes ?", "A chronic disease."},
		[3]string{"symptoms", "What are the symptoms of diabetes ?", "Thirst and fatigue."},
		[3]string{"treatment", "How is diabetes treated ?", "Insulin."},
	)))
	require.NoError(t, err)

	for i := 1; i <= 7; i++ {
		require.NoError(t, c.Store().PatientRecordStore().Create(ctx, types.PatientRecord{
			RawText:   "record " + string(rune('0'+i)),
			CreatedAt: int64(i),
		}))
	}

	bundle, err := v1.NewContextLogic(ctx, c).Assemble("diabetes", 2)
	require.NoError(t, err)
	require.Len(t, bundle.QA, 2)
	assert.Equal(t, "0000001-1", bundle.QA[0].QuestionID)
	assert.Equal(t, "0000001-2", bundle.QA[1].QuestionID)
	assert.Equal(t, "record 7\nrecord 6\nrecord 5\nrecord 4\nrecord 3", bundle.History)

	// focus match, default limit
	bundle, err = v1.NewContextLogic(ctx, c).Assemble("Diabetes", 0)
	require.NoError(t, err)
	assert.Len(t, bundle.QA, 3)

	bundle, err = v1.NewContextLogic(ctx, c).Assemble("DIABETES", 5)
	require.NoError(t, err)
	assert.NotNil(t, bundle.QA)
	assert.Empty(t, bundle.QA)
}

func Test_Query(t *testing.T) {
	c, chat := setupCore(t)
	chat.reply = "Frequent thirst is a common symptom of diabetes."

	_, err := v1.NewKnowledgeLogic(ctx, c).Import(strings.NewReader(medquadDocument("0000001", "Diabetes",
		[3]string{"symptoms", "What are the symptoms of diabetes ?", "Thirst and fatigue."},
	)))
	require.NoError(t, err)
	require.NoError(t, v1.NewPatientLogic(ctx, c).AddPatientData("very thirsty lately"))

	res, err := v1.NewQueryLogic(ctx, c).Query("diabetes", 5)
	require.NoError(t, err)
	assert.Equal(t, "Frequent thirst is a common symptom of diabetes.", res.Response)
	require.Len(t, res.Context.QA, 1)
	assert.Equal(t, "very thirsty lately", res.Context.History)

	req := chat.last()
	assert.Contains(t, req.System, "[0000001-1] (GHR)\nQuestion: What are the symptoms of diabetes ?\nAnswer: Thirst and fatigue.")
	assert.Contains(t, req.System, "very thirsty lately")
	assert.NotContains(t, req.System, "{relevant_passage}")
	assert.NotContains(t, req.System, "{history}")
	assert.Equal(t, "diabetes", req.Messages[0].Content)
}

func Test_QueryWithoutContext(t *testing.T) {
	c, chat := setupCore(t)
	chat.reply = "No reference covers this."

	res, err := v1.NewQueryLogic(ctx, c).Query("measles", 0)
	require.NoError(t, err)
	assert.Empty(t, res.Context.QA)
	assert.Empty(t, res.Context.History)
	assert.Contains(t, chat.last().System, "(none)")
}
