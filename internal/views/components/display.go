package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	ReadoutTextSize = 48
	readoutRadius   = 16
)

// Display shows the calculator title and the accumulator readout
type Display struct {
	container  *fyne.Container
	title      *widget.Label
	readout    *canvas.Text
	background *canvas.Rectangle
}

func NewDisplay() *Display {
	d := &Display{}
	d.createComponents()
	d.buildLayout()
	return d
}

func (d *Display) createComponents() {
	d.title = widget.NewLabelWithStyle("Simple Calculator", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	d.readout = canvas.NewText("0", theme.Color(theme.ColorNameForeground))
	d.readout.TextSize = ReadoutTextSize
	d.readout.TextStyle = fyne.TextStyle{Bold: true}
	d.readout.Alignment = fyne.TextAlignTrailing

	// tinted panel behind the digits
	d.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	d.background.CornerRadius = readoutRadius
}

func (d *Display) buildLayout() {
	d.container = container.NewVBox(
		d.title,
		container.NewStack(d.background, container.NewPadded(d.readout)),
	)
}

// SetText replaces the readout; callers must be on the UI goroutine
func (d *Display) SetText(text string) {
	d.readout.Text = text
	d.readout.Refresh()
}

func (d *Display) GetText() string {
	return d.readout.Text
}

func (d *Display) GetContainer() *fyne.Container {
	return d.container
}
