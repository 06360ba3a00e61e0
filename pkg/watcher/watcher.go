// Package watcher reports files that were created or rewritten in a directory.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"

	"github.com/breeew/aicare-api/pkg/safe"
)

const DEFAULT_DELAY = 500 * time.Millisecond

type Watcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
	delay      time.Duration
}

// New builds a watcher for files with one of extensions. A path is reported once no
// further write to it was seen for delay.
func New(extensions []string, delay time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DEFAULT_DELAY
	}

	return &Watcher{
		watcher: w,
		extensions: lo.Map(extensions, func(item string, _ int) string {
			return strings.ToLower(item)
		}),
		delay: delay,
	}, nil
}

// Watch emits settled paths until ctx is done or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan string, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	out := make(chan string, 16)
	go safe.Run(func() {
		defer close(out)

		// closed when the loop exits so pending timer callbacks never block on fired
		done := make(chan struct{})
		defer close(done)

		timers := make(map[string]*time.Timer)
		fired := make(chan string)
		defer func() {
			for _, t := range timers {
				t.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.isWatchedExtension(event.Name) {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}

				path := event.Name
				if t, exist := timers[path]; exist {
					t.Reset(w.delay)
					continue
				}
				timers[path] = time.AfterFunc(w.delay, func() {
					select {
					case fired <- path:
					case <-ctx.Done():
					case <-done:
					}
				})
			case path := <-fired:
				delete(timers, path)
				select {
				case out <- path:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				slog.Error("file watcher error", slog.String("dir", dir), slog.String("error", err.Error()))
			}
		}
	})

	return out, nil
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) isWatchedExtension(path string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	return lo.Contains(w.extensions, strings.ToLower(filepath.Ext(path)))
}
