package plugins

import (
	"fmt"
	"sync"

	"github.com/breeew/aicare-api/internal/core"
)

var (
	provider = make(map[string]core.SetupFunc)
	locker   sync.Mutex
)

func init() {
	RegisterProvider("selfhost", func() core.Plugins {
		return newSelfHostMode()
	})
}

func RegisterProvider(key string, f core.SetupFunc) {
	locker.Lock()
	defer locker.Unlock()
	provider[key] = f
}

// Setup builds the plugins registered under mode and hands them to install.
func Setup(install func(p core.Plugins) error, mode string) error {
	locker.Lock()
	p := provider[mode]
	locker.Unlock()
	if p == nil {
		return fmt.Errorf("setup mode not found: %s", mode)
	}
	return install(p())
}

func MustSetup(install func(p core.Plugins) error, mode string) {
	if err := Setup(install, mode); err != nil {
		panic(err)
	}
}
