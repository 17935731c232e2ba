package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// KeypadRows is the button grid, top to bottom
var KeypadRows = [][]string{
	{"7", "8", "9", "+"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "×"},
	{"C", "0", "=", "÷"},
}

// Keypad is the 4x4 calculator button grid
type Keypad struct {
	container *fyne.Container
	buttons   map[string]*widget.Button

	keyHandler func(string)
}

func NewKeypad() *Keypad {
	k := &Keypad{
		buttons: make(map[string]*widget.Button),
	}
	k.buildLayout()
	return k
}

func (k *Keypad) buildLayout() {
	grid := container.NewGridWithColumns(len(KeypadRows[0]))

	for _, row := range KeypadRows {
		for _, label := range row {
			button := widget.NewButton(label, func() {
				if k.keyHandler != nil {
					k.keyHandler(label)
				}
			})
			button.Importance = ImportanceFor(label)

			k.buttons[label] = button
			grid.Add(button)
		}
	}

	k.container = grid
}

// ImportanceFor colours operators orange, clear red and digits blue
func ImportanceFor(label string) widget.Importance {
	switch label {
	case "+", "-", "×", "÷", "=":
		return widget.WarningImportance
	case "C":
		return widget.DangerImportance
	default:
		return widget.HighImportance
	}
}

func (k *Keypad) SetKeyHandler(handler func(string)) {
	k.keyHandler = handler
}

// Button returns the button for label, or nil
func (k *Keypad) Button(label string) *widget.Button {
	return k.buttons[label]
}

func (k *Keypad) GetContainer() *fyne.Container {
	return k.container
}
