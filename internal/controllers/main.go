package controllers

import (
	"context"

	"pocket-calc/internal/clock"
	"pocket-calc/internal/config"
	"pocket-calc/internal/eventbus"
	"pocket-calc/internal/logger"
	"pocket-calc/internal/views"
)

// MainController connects the main view to the calculator, the clock and
// configuration reloads
type MainController struct {
	calculator *CalculatorController
	clock      *clock.Clock
	events     EventPublisher
	logger     logger.Logger

	mainView *views.MainView
}

func NewMainController(calc *CalculatorController, clk *clock.Clock, events EventPublisher, log logger.Logger) *MainController {
	return &MainController{
		calculator: calc,
		clock:      clk,
		events:     events,
		logger:     log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetKeyHandler(func(label string) {
		// unknown keyboard runes are expected and already logged
		_ = mc.calculator.HandleKey(label)
	})
	mc.mainView.SetScreenChangeHandler(mc.HandleScreenChange)
}

// HandleScreenChange records navigation between screens
func (mc *MainController) HandleScreenChange(screen string) {
	mc.logger.Info("MainController", "screen changed", map[string]interface{}{
		"screen": screen,
	})

	if mc.events != nil {
		mc.events.Publish(eventbus.Event{
			Type: eventbus.ScreenChanged,
			Data: map[string]interface{}{"screen": screen},
		})
	}
}

// RunClock feeds clock readings to the view until ctx is cancelled
func (mc *MainController) RunClock(ctx context.Context) {
	mc.clock.Run(ctx, func(r clock.Reading) {
		if mc.mainView != nil {
			mc.mainView.SetClock(r.Time, r.Date)
		}
	})
}

// ApplyConfig applies the live-reloadable settings; call on the UI goroutine
func (mc *MainController) ApplyConfig(cfg config.Config) {
	mc.clock.SetLayouts(cfg.Clock.TimeLayout, cfg.Clock.DateLayout)
	mc.calculator.SetMaxDigits(cfg.Calculator.MaxDigits)

	mc.logger.Info("MainController", "configuration applied", map[string]interface{}{
		"time_layout": cfg.Clock.TimeLayout,
		"max_digits":  cfg.Calculator.MaxDigits,
	})

	if mc.events != nil {
		mc.events.Publish(eventbus.Event{
			Type: eventbus.ConfigReloaded,
			Data: map[string]interface{}{"max_digits": cfg.Calculator.MaxDigits},
		})
	}
}
