package medquad_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/aicare-api/pkg/medquad"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Document id="0000001" source="GHR" url="https://ghr.nlm.nih.gov/condition/diabetes">
  <Focus>Diabetes</Focus>
  <QAPairs>
    <QAPair pid="1">
      <Question qid="0000001-1" qtype="information">What is (are) diabetes ?</Question>
      <Answer>Diabetes is a chronic disease that affects how the body turns food into energy.</Answer>
    </QAPair>
    <QAPair pid="2">
      <Question qid="0000001-2" qtype="symptoms">What are the symptoms of diabetes ?</Question>
      <Answer>Frequent urination, increased thirst and blurred vision.</Answer>
    </QAPair>
    <QAPair pid="3">
      <Question qid="0000001-3" qtype="treatment">What are the treatments for diabetes ?</Question>
    </QAPair>
  </QAPairs>
</Document>`

func Test_Parse(t *testing.T) {
	doc, err := medquad.ParseString(sampleDocument)
	require.NoError(t, err)

	assert.Equal(t, "0000001", doc.ID)
	assert.Equal(t, "GHR", doc.Source)
	assert.Len(t, doc.QAPairs, 3)

	entries := doc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Diabetes", entries[0].Focus)
	assert.Equal(t, "0000001-1", entries[0].QuestionID)
	assert.Equal(t, "information", entries[0].QuestionType)
	assert.Equal(t, "What is (are) diabetes ?", entries[0].Question)
	assert.Equal(t, "symptoms", entries[1].QuestionType)
	assert.Equal(t, "GHR", entries[1].Source)
}

func Test_ParseMissingOptionalFields(t *testing.T) {
	doc, err := medquad.ParseString(`<Doc><QAPairs><QAPair><Question>Q?</Question><Answer>A.</Answer></QAPair></QAPairs></Doc>`)
	require.NoError(t, err)

	entries := doc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].DocumentID)
	assert.Equal(t, "", entries[0].Focus)
	assert.Equal(t, "", entries[0].Source)
	assert.Equal(t, "", entries[0].QuestionID)
	assert.Equal(t, "", entries[0].QuestionType)
	assert.Equal(t, "Q?", entries[0].Question)
}

func Test_ParseEmptyPairs(t *testing.T) {
	doc, err := medquad.ParseString(`<Document id="1" source="x"><Focus>F</Focus><QAPairs></QAPairs></Document>`)
	require.NoError(t, err)
	assert.Empty(t, doc.Entries())
}

func Test_ParseMalformed(t *testing.T) {
	_, err := medquad.ParseString(`<Document id="1"><QAPairs><QAPair>`)
	require.Error(t, err)

	var pe *medquad.ParseError
	assert.True(t, errors.As(err, &pe))

	for _, trailing := range []string{
		`<QAPair><Question>`,
		`<Document id="2"></Document>`,
		`leftover`,
	} {
		_, err = medquad.ParseString(validDocument + trailing)
		require.Error(t, err, trailing)
		assert.True(t, errors.As(err, &pe), trailing)
	}
}

func Test_ParseTrailingMisc(t *testing.T) {
	doc, err := medquad.ParseString(validDocument + "\n<!-- exported -->\n<?done?>\n")
	require.NoError(t, err)
	assert.Len(t, doc.Entries(), 1)
}

const validDocument = `<Document id="1"><Focus>Asthma</Focus><QAPairs><QAPair pid="1"><Question qid="1-1" qtype="information">What is asthma ?</Question><Answer>A disease of the airways.</Answer></QAPair></QAPairs></Document>`
