package shutdown

import (
	"sync"
	"testing"
	"time"

	"pocket-calc/internal/logger"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) component(name string) Shutdownable {
	return Func(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order = append(r.order, name)
	})
}

func TestShutdownRunsInReverseOrder(t *testing.T) {
	rec := &recorder{}
	m := NewManager(logger.NoOp{})
	m.Register("clock", rec.component("clock"))
	m.Register("watcher", rec.component("watcher"))
	m.Register("bus", rec.component("bus"))

	m.Shutdown()

	assert.Equal(t, []string{"bus", "watcher", "clock"}, rec.order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	rec := &recorder{}
	m := NewManager(logger.NoOp{})
	m.Register("clock", rec.component("clock"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"clock"}, rec.order)
}

func TestShutdownDoesNotWaitForStuckComponent(t *testing.T) {
	rec := &recorder{}
	block := make(chan struct{})
	defer close(block)

	m := NewManager(logger.NoOp{})
	m.SetTimeout(20 * time.Millisecond)
	m.Register("first", rec.component("first"))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, []string{"first"}, rec.order)
}
