package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/breeew/aicare-api/pkg/i18n"
)

// CustomizedError carries where an error happened (trace), a stable message key
// and the http status the API layer should answer with.
type CustomizedError struct {
	trace string
	msg   string
	err   error
	code  int
}

func New(trace, msg string, err error) *CustomizedError {
	return &CustomizedError{
		trace: trace,
		msg:   msg,
		err:   err,
		code:  http.StatusBadRequest,
	}
}

// Trace prefixes err's trace, wrapping plain errors as internal ones.
func Trace(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CustomizedError
	if errors.As(err, &ce) {
		return &CustomizedError{
			trace: prefix + "." + ce.trace,
			msg:   ce.msg,
			err:   ce.err,
			code:  ce.code,
		}
	}
	return New(prefix, i18n.ERROR_INTERNAL, err)
}

func (e *CustomizedError) Code(code int) *CustomizedError {
	e.code = code
	return e
}

func (e *CustomizedError) HttpCode() int {
	return e.code
}

func (e *CustomizedError) Msg() string {
	return e.msg
}

func (e *CustomizedError) TraceString() string {
	return e.trace
}

// Error returns the text of the cause so callers see the original failure.
func (e *CustomizedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *CustomizedError) Unwrap() error {
	return e.err
}

func (e *CustomizedError) String() string {
	var sb strings.Builder
	sb.WriteString(e.trace)
	sb.WriteString(": ")
	sb.WriteString(e.msg)
	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}
	return sb.String()
}

func As(err error) (*CustomizedError, bool) {
	var ce *CustomizedError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}
