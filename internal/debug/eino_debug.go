package debug

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cloudwego/eino-ext/devops"

	"github.com/mihikajadhav02/NiraCare/internal/config"
)

// devops.Init starts a process-wide debug server, so it must run at most
// once no matter how many sessions create a debugger.
var (
	initOnce sync.Once
	initErr  error

	devopsInit = func(ctx context.Context) error {
		return devops.Init(ctx)
	}
)

// EinoDebugger exposes the eino visual debug server so model calls made
// through eino chat models can be inspected in the devops web interface.
// It stays inert unless enabled in the configuration.
type EinoDebugger struct {
	config *config.Config
	ctx    context.Context
}

func NewEinoDebugger(cfg *config.Config) *EinoDebugger {
	return &EinoDebugger{
		config: cfg,
		ctx:    context.Background(),
	}
}

func (d *EinoDebugger) Initialize() error {
	if !d.config.EinoDebugEnabled {
		return nil
	}

	initOnce.Do(func() {
		if d.config.Debug {
			log.Printf("[EinoDebug] Initializing Eino visual debug plugin on port %d", d.config.EinoDebugPort)
		}

		if err := devopsInit(d.ctx); err != nil {
			initErr = fmt.Errorf("failed to initialize Eino debug plugin: %w", err)
			return
		}

		if d.config.Debug {
			log.Printf("[EinoDebug] Successfully initialized debug server at http://localhost:%d", d.config.EinoDebugPort)
		}
	})

	return initErr
}

func (d *EinoDebugger) IsEnabled() bool {
	return d.config.EinoDebugEnabled
}

func (d *EinoDebugger) DebugURL() string {
	if !d.config.EinoDebugEnabled {
		return ""
	}
	return fmt.Sprintf("http://localhost:%d", d.config.EinoDebugPort)
}
