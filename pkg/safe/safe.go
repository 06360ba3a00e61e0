package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run calls f and swallows any panic after logging it.
func Run(f func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from panic", slog.Any("panic", r), slog.String("stack", string(debug.Stack())))
		}
	}()
	f()
}
