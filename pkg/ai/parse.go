package ai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/breeew/aicare-api/pkg/types"
)

var ErrFormat = errors.New("malformed model reply")

// FormatError reports a reply that does not contain the summary/questions separator.
type FormatError struct {
	Reply string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: no blank line between summary and questions", ErrFormat.Error())
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// ParseSummaryAndQuestions splits reply on the first blank line. In each half
// the first line is a heading and is dropped together with empty lines.
func ParseSummaryAndQuestions(reply string) (*types.SummaryResult, error) {
	normalized := strings.ReplaceAll(reply, "\r\n", "\n")
	summary, questions, found := strings.Cut(normalized, "\n\n")
	if !found {
		return nil, &FormatError{Reply: reply}
	}

	return &types.SummaryResult{
		Summary:   bullets(summary),
		Questions: bullets(questions),
	}, nil
}

func bullets(block string) []string {
	lines := strings.Split(block, "\n")
	res := make([]string, 0, len(lines))
	for _, v := range lines[1:] {
		if v == "" {
			continue
		}
		res = append(res, v)
	}
	return res
}
