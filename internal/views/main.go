package views

import (
	"fmt"
	"time"

	"pocket-calc/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	ScreenCalculator = "Calculator"
	ScreenClock      = "Clock"
)

// Screens lists the navigation entries in menu order
var Screens = []string{ScreenCalculator, ScreenClock}

// MainView represents the main application window content
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	content       *fyne.Container
	titleLabel    *widget.Label
	menuButton    *widget.Button
	sideMenu      *components.SideMenu
	display       *components.Display
	keypad        *components.Keypad
	clockFace     *components.ClockFace

	screens map[string]fyne.CanvasObject
	current string

	// Event handlers - connected to controller
	keyHandler          func(string)
	screenChangeHandler func(string)
}

// NewMainView builds the view and installs it as the window content
func NewMainView(window fyne.Window, menuAnimation time.Duration) *MainView {
	view := &MainView{
		window:  window,
		screens: make(map[string]fyne.CanvasObject),
	}

	view.initializeComponents(menuAnimation)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(menuAnimation time.Duration) {
	mv.display = components.NewDisplay()
	mv.keypad = components.NewKeypad()
	mv.clockFace = components.NewClockFace()
	mv.sideMenu = components.NewSideMenu(Screens, menuAnimation)

	mv.titleLabel = widget.NewLabelWithStyle(ScreenCalculator, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	mv.menuButton = widget.NewButtonWithIcon("", theme.MenuIcon(), func() {
		mv.sideMenu.Toggle()
	})
}

func (mv *MainView) buildLayout() {
	mv.screens[ScreenCalculator] = container.NewPadded(container.NewVBox(
		mv.display.GetContainer(),
		mv.keypad.GetContainer(),
	))
	mv.screens[ScreenClock] = mv.clockFace.GetContainer()

	mv.content = container.NewStack()
	for _, name := range Screens {
		mv.content.Add(mv.screens[name])
	}

	topBar := container.NewBorder(nil, nil, mv.menuButton, nil, mv.titleLabel)

	mv.mainContainer = container.NewBorder(
		topBar,                     // top
		nil,                        // bottom
		mv.sideMenu.GetContainer(), // left
		nil,                        // right
		mv.content,                 // center
	)

	mv.showScreen(ScreenCalculator)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.keypad.SetKeyHandler(func(label string) {
		if mv.keyHandler != nil {
			mv.keyHandler(label)
		}
	})

	mv.sideMenu.SetSelectHandler(func(item string) {
		if err := mv.ShowScreen(item); err != nil {
			mv.ShowError(err)
		}
	})

	mv.sideMenu.SetRelayoutHandler(func() {
		mv.mainContainer.Refresh()
	})

	// Keyboard input only drives the calculator while it is visible
	mv.window.Canvas().SetOnTypedRune(func(r rune) {
		if mv.current == ScreenCalculator && mv.keyHandler != nil {
			mv.keyHandler(string(r))
		}
	})

	mv.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if mv.current != ScreenCalculator || mv.keyHandler == nil {
			return
		}
		switch ev.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			mv.keyHandler("=")
		case fyne.KeyEscape, fyne.KeyDelete:
			mv.keyHandler("C")
		}
	})
}

// SetKeyHandler sets the handler for keypad and keyboard input
func (mv *MainView) SetKeyHandler(handler func(string)) {
	mv.keyHandler = handler
}

// SetScreenChangeHandler is notified after navigation switches screens
func (mv *MainView) SetScreenChangeHandler(handler func(string)) {
	mv.screenChangeHandler = handler
}

// UI update methods - called by controllers

// SetDisplay updates the calculator readout
func (mv *MainView) SetDisplay(text string) {
	mv.display.SetText(text)
}

// SetClock updates the clock screen; safe to call from any goroutine
func (mv *MainView) SetClock(timeText, dateText string) {
	fyne.Do(func() {
		mv.clockFace.SetTime(timeText, dateText)
	})
}

// ShowScreen switches the content area to the named screen
func (mv *MainView) ShowScreen(name string) error {
	if _, ok := mv.screens[name]; !ok {
		return fmt.Errorf("unknown screen %q", name)
	}
	if name == mv.current {
		return nil
	}

	mv.showScreen(name)
	if mv.screenChangeHandler != nil {
		mv.screenChangeHandler(name)
	}
	return nil
}

func (mv *MainView) showScreen(name string) {
	for screen, obj := range mv.screens {
		if screen == name {
			obj.Show()
		} else {
			obj.Hide()
		}
	}
	mv.current = name
	mv.titleLabel.SetText(name)
	mv.content.Refresh()
}

// ToggleMenu opens or closes the navigation drawer
func (mv *MainView) ToggleMenu() {
	mv.sideMenu.Toggle()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetKeypad() *components.Keypad {
	return mv.keypad
}

func (mv *MainView) GetSideMenu() *components.SideMenu {
	return mv.sideMenu
}

func (mv *MainView) GetMenuButton() *widget.Button {
	return mv.menuButton
}

// ViewState represents the current state of the view
type ViewState struct {
	Screen    string
	Display   string
	ClockTime string
	ClockDate string
	MenuOpen  bool
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		Screen:    mv.current,
		Display:   mv.display.GetText(),
		ClockTime: mv.clockFace.GetTime(),
		ClockDate: mv.clockFace.GetDate(),
		MenuOpen:  mv.sideMenu.IsOpen(),
	}
}
