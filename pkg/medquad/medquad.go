// Package medquad reads MedQuAD question/answer documents.
//
// A document looks like:
//
//	<Document id="0000001" source="GHR" url="...">
//	  <Focus>Diabetes</Focus>
//	  <QAPairs>
//	    <QAPair pid="1">
//	      <Question qid="0000001-1" qtype="information">What is diabetes?</Question>
//	      <Answer>...</Answer>
//	    </QAPair>
//	  </QAPairs>
//	</Document>
package medquad

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/breeew/aicare-api/pkg/types"
)

type Document struct {
	XMLName xml.Name
	ID      string   `xml:"id,attr"`
	Source  string   `xml:"source,attr"`
	URL     string   `xml:"url,attr"`
	Focus   string   `xml:"Focus"`
	QAPairs []QAPair `xml:"QAPairs>QAPair"`
}

type QAPair struct {
	PID      string    `xml:"pid,attr"`
	Question *Question `xml:"Question"`
	Answer   *Answer   `xml:"Answer"`
}

type Question struct {
	QID   string `xml:"qid,attr"`
	QType string `xml:"qtype,attr"`
	Text  string `xml:",chardata"`
}

type Answer struct {
	Text string `xml:",chardata"`
}

// ParseError is returned when the input is not well-formed XML.
type ParseError struct {
	Err error
}

var ErrTrailingContent = errors.New("content after the root element")

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse medquad document: %s", e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes one document. Only comments, processing instructions and whitespace
// may follow the root element.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return &doc, nil
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return nil, &ParseError{Err: ErrTrailingContent}
			}
		default:
			return nil, &ParseError{Err: ErrTrailingContent}
		}
	}
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Entries flattens the document, skipping pairs without both a question and an answer.
func (d *Document) Entries() []types.MedicalQA {
	focus := strings.TrimSpace(d.Focus)
	list := make([]types.MedicalQA, 0, len(d.QAPairs))
	for _, v := range d.QAPairs {
		if v.Question == nil || v.Answer == nil {
			continue
		}
		list = append(list, types.MedicalQA{
			DocumentID:   d.ID,
			Focus:        focus,
			Source:       d.Source,
			QuestionID:   v.Question.QID,
			QuestionType: v.Question.QType,
			Question:     strings.TrimSpace(v.Question.Text),
			Answer:       strings.TrimSpace(v.Answer.Text),
		})
	}
	return list
}
