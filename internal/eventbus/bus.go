package eventbus

import (
	"fmt"
	"sync"
	"time"

	"pocket-calc/internal/logger"
)

const (
	KeyPressed     = "calculator.key"
	ResultComputed = "calculator.result"
	ScreenChanged  = "view.screen"
	ConfigReloaded = "config.reloaded"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// Bus delivers events asynchronously. Publish never blocks: when the buffer
// is full the event is dropped.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	done        chan struct{}
	closeOnce   sync.Once
	wg          sync.WaitGroup
	logger      logger.Logger
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
		done:        make(chan struct{}),
		logger:      log,
	}

	bus.startWorker()
	return bus
}

// Publish reports whether the event was queued
func (b *Bus) Publish(event Event) bool {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case <-b.done:
		return false
	default:
	}

	select {
	case b.buffer <- event:
		return true
	default:
		b.logger.Debug("EventBus", "event dropped", map[string]interface{}{
			"type": event.Type,
		})
		return false
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops accepting events, drains what is queued and waits for the worker
func (b *Bus) Shutdown() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatchEvent(event)
			case <-b.done:
				for {
					select {
					case event := <-b.buffer:
						b.dispatchEvent(event)
					default:
						return
					}
				}
			}
		}
	}()
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.safeHandle(handler, event)
	}
}

func (b *Bus) safeHandle(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler %s panicked: %v", h.GetID(), r), map[string]interface{}{
				"type": event.Type,
			})
		}
	}()
	h.Handle(event)
}
