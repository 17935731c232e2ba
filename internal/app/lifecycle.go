package app

import (
	"context"
	"sync"
	"time"

	"pocket-calc/internal/logger"
	"pocket-calc/internal/shutdown"
)

const goroutineStopTimeout = 5 * time.Second

// Lifecycle owns the background loops and the ordered shutdown of components
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
	wg      sync.WaitGroup
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

// Register adds a component stopped during Shutdown, last registered first
func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(name, component)
}

// Go runs fn in the background with a context cancelled on shutdown
func (l *Lifecycle) Go(name string, fn func(ctx context.Context)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		l.logger.Debug("Lifecycle", "loop started", map[string]interface{}{"loop": name})
		fn(l.manager.Context())
		l.logger.Debug("Lifecycle", "loop stopped", map[string]interface{}{"loop": name})
	}()
}

// Listen triggers Shutdown on SIGINT/SIGTERM, then calls after
func (l *Lifecycle) Listen(after func()) {
	l.manager.Listen(func() {
		l.wait()
		if after != nil {
			after()
		}
	})
}

func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
	l.wait()
}

func (l *Lifecycle) wait() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(goroutineStopTimeout):
		l.logger.Warning("Lifecycle", "background loops still running after shutdown", nil)
	}
}
