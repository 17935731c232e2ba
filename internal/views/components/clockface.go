package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const ClockTextSize = 56

// ClockFace is the digital clock screen
type ClockFace struct {
	container *fyne.Container
	timeText  *canvas.Text
	dateLabel *widget.Label
}

func NewClockFace() *ClockFace {
	c := &ClockFace{}

	c.timeText = canvas.NewText("--:--:--", theme.Color(theme.ColorNamePrimary))
	c.timeText.TextSize = ClockTextSize
	c.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	c.timeText.Alignment = fyne.TextAlignCenter

	c.dateLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	c.container = container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Digital Clock", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		c.timeText,
		c.dateLabel,
	))
	return c
}

func (c *ClockFace) SetTime(timeText, dateText string) {
	c.timeText.Text = timeText
	c.timeText.Refresh()
	c.dateLabel.SetText(dateText)
}

func (c *ClockFace) GetTime() string {
	return c.timeText.Text
}

func (c *ClockFace) GetDate() string {
	return c.dateLabel.Text
}

func (c *ClockFace) GetContainer() *fyne.Container {
	return c.container
}
