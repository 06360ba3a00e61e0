package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct{}

func TestRegisterFunc(t *testing.T) {
	var got []string
	RegisterFunc(testKey{}, Handler[*[]string](func(s *[]string) { *s = append(*s, "a") }))
	RegisterFunc(testKey{}, Handler[*[]string](func(s *[]string) { *s = append(*s, "b") }))
	RegisterFunc(testKey{}, Handler[int](func(int) {}))

	handlers := ResolveFuncHandlers[*[]string](testKey{})
	assert.Len(t, handlers, 2)
	for _, h := range handlers {
		h(&got)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
