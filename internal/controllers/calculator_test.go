package controllers

import (
	"errors"
	"sync"
	"testing"

	"pocket-calc/internal/calculator"
	"pocket-calc/internal/eventbus"
	"pocket-calc/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	renders []string
}

func (f *fakeView) SetDisplay(text string) {
	f.renders = append(f.renders, text)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (f *fakePublisher) Publish(event eventbus.Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return true
}

func (f *fakePublisher) ofType(eventType string) []eventbus.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []eventbus.Event
	for _, e := range f.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func newController(opts ...calculator.Option) (*CalculatorController, *fakeView, *fakePublisher) {
	view := &fakeView{}
	pub := &fakePublisher{}
	cc := NewCalculatorController(calculator.New(opts...), view, pub, logger.NoOp{})
	return cc, view, pub
}

func handle(t *testing.T, cc *CalculatorController, labels ...string) {
	t.Helper()
	for _, label := range labels {
		require.NoError(t, cc.HandleKey(label), "label %q", label)
	}
}

func TestControllerRendersInitialReadout(t *testing.T) {
	_, view, _ := newController()

	assert.Equal(t, []string{"0"}, view.renders)
}

func TestControllerRendersAfterEveryKey(t *testing.T) {
	cc, view, _ := newController()

	handle(t, cc, "2", "+", "3", "+", "4", "=")

	assert.Equal(t, []string{"0", "2", "2", "3", "5", "4", "9"}, view.renders)
	assert.Equal(t, "9", cc.Display())
}

func TestControllerKeyboardAliases(t *testing.T) {
	cc, _, _ := newController()

	handle(t, cc, "6", "*", "2", "=")
	assert.Equal(t, "12", cc.Display())

	handle(t, cc, "c", "1", "/", "4", "=")
	assert.Equal(t, "0.25", cc.Display())
}

func TestControllerDivisionByZero(t *testing.T) {
	cc, _, _ := newController()

	handle(t, cc, "5", "÷", "0", "=")
	assert.Equal(t, "0", cc.Display())
}

func TestControllerUnknownKey(t *testing.T) {
	cc, view, pub := newController()
	handle(t, cc, "4")
	before := cc.State()

	err := cc.HandleKey("%")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculator.ErrUnknownKey))
	assert.Equal(t, before, cc.State())
	assert.Len(t, view.renders, 2)
	assert.Len(t, pub.ofType(eventbus.KeyPressed), 1)
}

func TestControllerPublishesEvents(t *testing.T) {
	cc, _, pub := newController()

	handle(t, cc, "8", "-", "3", "×", "2", "=")

	keys := pub.ofType(eventbus.KeyPressed)
	require.Len(t, keys, 6)
	assert.Equal(t, "×", keys[3].Data["key"])
	assert.Equal(t, "5", keys[3].Data["display"])

	results := pub.ofType(eventbus.ResultComputed)
	require.Len(t, results, 2)
	assert.Equal(t, "-", results[0].Data["operator"])
	assert.Equal(t, "5", results[0].Data["result"])
	assert.Equal(t, "×", results[1].Data["operator"])
	assert.Equal(t, float64(5), results[1].Data["lhs"])
	assert.Equal(t, "2", results[1].Data["rhs"])
	assert.Equal(t, "10", results[1].Data["result"])
}

func TestControllerEqualsWithoutPendingPublishesNoResult(t *testing.T) {
	cc, _, pub := newController()

	handle(t, cc, "7", "=")

	assert.Empty(t, pub.ofType(eventbus.ResultComputed))
	assert.Equal(t, "7", cc.Display())
}

func TestControllerSetMaxDigits(t *testing.T) {
	cc, _, _ := newController()
	cc.SetMaxDigits(2)

	handle(t, cc, "1", "2", "3")
	assert.Equal(t, "12", cc.Display())
}

func TestControllerToleratesNilCollaborators(t *testing.T) {
	cc := NewCalculatorController(calculator.New(), nil, nil, logger.NoOp{})

	assert.NotPanics(t, func() {
		_ = cc.HandleKey("3")
		_ = cc.HandleKey("+")
		_ = cc.HandleKey("3")
		_ = cc.HandleKey("=")
	})
	assert.Equal(t, "6", cc.Display())
}
