package app

import (
	"fmt"
	"runtime"
	"time"

	"pocket-calc/internal/calculator"
	"pocket-calc/internal/clock"
	"pocket-calc/internal/config"
	"pocket-calc/internal/controllers"
	"pocket-calc/internal/eventbus"
	"pocket-calc/internal/logger"
	"pocket-calc/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName         = "Pocket Calc"
	AppID           = "com.pocketcalc.app"
	AppVersion      = "1.0.0"
	EventBufferSize = 64
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	calculator *controllers.CalculatorController
	bus        *eventbus.Bus
	lifecycle  *Lifecycle
	logger     logger.Logger

	config     config.Config
	configPath string
}

// NewApplication builds the application around a new Fyne app. configPath
// may be empty, in which case configuration is not watched.
func NewApplication(cfg config.Config, configPath string, log logger.Logger) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	return newApplication(app.NewWithID(AppID), cfg, configPath, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, configPath string, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new application: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"go_version":    runtime.Version(),
		"max_digits":    cfg.Calculator.MaxDigits,
		"config_path":   configPath,
	})

	lifecycle := NewLifecycle(log)

	bus := eventbus.NewBus(EventBufferSize, log)
	eventbus.SubscribeAll(bus, eventbus.NewLogHandler(log))
	lifecycle.Register("event bus", bus)

	view := views.NewMainView(window, time.Duration(cfg.Menu.AnimationMs)*time.Millisecond)

	acc := calculator.New(calculator.WithMaxDigits(cfg.Calculator.MaxDigits))
	calc := controllers.NewCalculatorController(acc, view, bus, log)
	clk := clock.New(cfg.Clock.TimeLayout, cfg.Clock.DateLayout)

	controller := controllers.NewMainController(calc, clk, bus, log)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		calculator: calc,
		bus:        bus,
		lifecycle:  lifecycle,
		logger:     log,
		config:     cfg,
		configPath: configPath,
	}

	application.setupWindowEvents()
	application.setupMenus()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})
}

// Start launches the clock and the configuration watcher
func (a *Application) Start() {
	a.lifecycle.Go("clock", a.controller.RunClock)

	if a.configPath == "" {
		return
	}

	watcher, err := config.NewWatcher(a.configPath, a.logger, func(cfg config.Config) {
		fyne.Do(func() {
			a.controller.ApplyConfig(cfg)
		})
	})
	if err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"path": a.configPath,
		})
		return
	}

	a.lifecycle.Register("config watcher", watcher)
	a.lifecycle.Go("config watcher", watcher.Run)
}

// Run starts background work, shows the window and blocks until the app quits
func (a *Application) Run() error {
	a.Start()
	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// Shutdown stops background work without closing the window
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}
