package controllers

import (
	"testing"
	"time"

	"pocket-calc/internal/calculator"
	"pocket-calc/internal/clock"
	"pocket-calc/internal/config"
	"pocket-calc/internal/eventbus"
	"pocket-calc/internal/logger"
	"pocket-calc/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.December, 26, 18, 30, 0, 0, time.UTC)

func newWiredView(t *testing.T) (*MainController, *views.MainView, *fakePublisher) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	view := views.NewMainView(w, 0)
	pub := &fakePublisher{}
	calc := NewCalculatorController(calculator.New(), view, pub, logger.NoOp{})
	clk := clock.New("15:04", "2006-01-02", clock.WithNow(func() time.Time { return fixedNow }))

	mc := NewMainController(calc, clk, pub, logger.NoOp{})
	mc.SetMainView(view)
	return mc, view, pub
}

func tapAll(t *testing.T, view *views.MainView, labels ...string) {
	t.Helper()
	for _, label := range labels {
		button := view.GetKeypad().Button(label)
		require.NotNil(t, button, label)
		test.Tap(button)
	}
}

func TestKeypadDrivesReadout(t *testing.T) {
	_, view, _ := newWiredView(t)

	tapAll(t, view, "2", "+", "3", "+", "4", "=")
	assert.Equal(t, "9", view.GetViewState().Display)

	tapAll(t, view, "C")
	assert.Equal(t, "0", view.GetViewState().Display)

	tapAll(t, view, "6", "×", "2", "=")
	assert.Equal(t, "12", view.GetViewState().Display)
}

func TestKeyboardDrivesReadout(t *testing.T) {
	_, view, _ := newWiredView(t)

	test.TypeOnCanvas(view.GetWindow().Canvas(), "1/4=")
	assert.Equal(t, "0.25", view.GetViewState().Display)

	// unknown runes are ignored
	test.TypeOnCanvas(view.GetWindow().Canvas(), "?")
	assert.Equal(t, "0.25", view.GetViewState().Display)
}

func TestScreenChangePublishesEvent(t *testing.T) {
	_, view, pub := newWiredView(t)

	require.NoError(t, view.ShowScreen(views.ScreenClock))

	events := pub.ofType(eventbus.ScreenChanged)
	require.Len(t, events, 1)
	assert.Equal(t, views.ScreenClock, events[0].Data["screen"])
}

func TestApplyConfig(t *testing.T) {
	mc, view, pub := newWiredView(t)

	cfg := config.Default()
	cfg.Calculator.MaxDigits = 3
	cfg.Clock.TimeLayout = "3:04 PM"
	mc.ApplyConfig(cfg)

	tapAll(t, view, "1", "2", "3", "4")
	assert.Equal(t, "123", view.GetViewState().Display)

	assert.Equal(t, "6:30 PM", mc.clock.Current().Time)
	assert.Len(t, pub.ofType(eventbus.ConfigReloaded), 1)
}
