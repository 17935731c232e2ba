package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"pocket-calc/internal/config"
	"pocket-calc/internal/logger"
	"pocket-calc/internal/shutdown"
	"pocket-calc/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T, cfg config.Config, configPath string) *Application {
	t.Helper()
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	application, err := newApplication(fyneApp, cfg, configPath, logger.NoOp{})
	require.NoError(t, err)
	t.Cleanup(application.Shutdown)
	return application
}

func TestNewApplicationRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 0

	_, err := newApplication(test.NewApp(), cfg, "", logger.NoOp{})
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestApplicationWiresCalculator(t *testing.T) {
	a := newTestApplication(t, config.Default(), "")

	for _, label := range []string{"1", "÷", "4", "="} {
		test.Tap(a.view.GetKeypad().Button(label))
	}

	assert.Equal(t, "0.25", a.view.GetViewState().Display)
	assert.Equal(t, "0.25", a.calculator.Display())
	assert.Equal(t, views.ScreenCalculator, a.view.GetViewState().Screen)
}

func TestApplicationAppliesDigitCap(t *testing.T) {
	cfg := config.Default()
	cfg.Calculator.MaxDigits = 2
	a := newTestApplication(t, cfg, "")

	for _, label := range []string{"9", "8", "7"} {
		test.Tap(a.view.GetKeypad().Button(label))
	}

	assert.Equal(t, "98", a.view.GetViewState().Display)
}

func TestApplicationStartAndShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocket-calc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[clock]\ntime_layout = \"15:04\"\n"), 0o644))

	a := newTestApplication(t, config.Default(), path)
	a.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Shutdown()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
	assert.Error(t, a.lifecycle.Context().Err())
}

func TestLifecycleStopsLoopsAndComponents(t *testing.T) {
	l := NewLifecycle(logger.NoOp{})

	var stopped atomic.Int32
	l.Register("component", shutdown.Func(func() { stopped.Add(1) }))

	var loops atomic.Int32
	for i := 0; i < 3; i++ {
		l.Go("loop", func(ctx context.Context) {
			<-ctx.Done()
			loops.Add(1)
		})
	}

	l.Shutdown()

	assert.Equal(t, int32(3), loops.Load())
	assert.Equal(t, int32(1), stopped.Load())

	l.Shutdown()
	assert.Equal(t, int32(1), stopped.Load())
}

func TestMainMenu(t *testing.T) {
	a := newTestApplication(t, config.Default(), "")

	menu := a.window.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 3)

	labels := func(m *fyne.Menu) []string {
		var out []string
		for _, item := range m.Items {
			if !item.IsSeparator {
				out = append(out, item.Label)
			}
		}
		return out
	}
	assert.Equal(t, []string{"Clear", "Quit"}, labels(menu.Items[0]))
	assert.Equal(t, []string{views.ScreenCalculator, views.ScreenClock, "Toggle Navigation"}, labels(menu.Items[1]))
	assert.Equal(t, []string{"About"}, labels(menu.Items[2]))

	// View > Clock switches screens
	menu.Items[1].Items[1].Action()
	assert.Equal(t, views.ScreenClock, a.view.GetViewState().Screen)

	// File > Clear resets the readout
	test.Tap(a.view.GetKeypad().Button("7"))
	menu.Items[0].Items[0].Action()
	assert.Equal(t, "0", a.view.GetViewState().Display)
}
