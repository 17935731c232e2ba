package components

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SideMenu is a navigation drawer that slides in from the left edge
type SideMenu struct {
	container *fyne.Container
	panel     *fyne.Container
	layout    *drawerLayout
	buttons   map[string]*widget.Button
	items     []string

	open      bool
	duration  time.Duration
	animation *fyne.Animation

	selectHandler   func(string)
	relayoutHandler func()
}

func NewSideMenu(items []string, duration time.Duration) *SideMenu {
	m := &SideMenu{
		items:    items,
		buttons:  make(map[string]*widget.Button),
		duration: duration,
		layout:   &drawerLayout{},
	}
	m.buildLayout()
	return m
}

func (m *SideMenu) buildLayout() {
	entries := container.NewVBox(widget.NewLabelWithStyle("Menu", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, item := range m.items {
		button := widget.NewButton(item, func() {
			m.Close()
			if m.selectHandler != nil {
				m.selectHandler(item)
			}
		})
		button.Alignment = widget.ButtonAlignLeading
		button.Importance = widget.LowImportance

		m.buttons[item] = button
		entries.Add(button)
	}

	background := canvas.NewRectangle(theme.Color(theme.ColorNameMenuBackground))
	m.panel = container.NewStack(background, container.NewPadded(entries))
	m.panel.Hide()

	m.container = container.New(m.layout, m.panel)
}

// SetSelectHandler is called with the item label after the drawer closes
func (m *SideMenu) SetSelectHandler(handler func(string)) {
	m.selectHandler = handler
}

// SetRelayoutHandler is called on every animation frame so the owner can
// re-lay out around the changing drawer width
func (m *SideMenu) SetRelayoutHandler(handler func()) {
	m.relayoutHandler = handler
}

func (m *SideMenu) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

func (m *SideMenu) Open() {
	if m.open {
		return
	}
	m.open = true
	m.panel.Show()
	m.animate(m.layout.progress, 1)
}

func (m *SideMenu) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.animate(m.layout.progress, 0)
}

func (m *SideMenu) IsOpen() bool {
	return m.open
}

// Button returns the entry for item, or nil
func (m *SideMenu) Button(item string) *widget.Button {
	return m.buttons[item]
}

func (m *SideMenu) GetContainer() *fyne.Container {
	return m.container
}

func (m *SideMenu) animate(from, to float32) {
	if m.animation != nil {
		m.animation.Stop()
	}

	if m.duration <= 0 {
		m.setProgress(to)
		return
	}

	m.animation = fyne.NewAnimation(m.duration, func(p float32) {
		m.setProgress(from + (to-from)*p)
	})
	m.animation.Curve = fyne.AnimationEaseOut
	m.animation.Start()
}

func (m *SideMenu) setProgress(p float32) {
	m.layout.progress = p
	if p <= 0 && !m.open {
		m.panel.Hide()
	}

	m.container.Refresh()
	if m.relayoutHandler != nil {
		m.relayoutHandler()
	}
}

// drawerLayout exposes a fraction of its content's width, keeping the
// content's right edge flush with the visible area.
type drawerLayout struct {
	progress float32
}

func (d *drawerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	inner := objects[0].MinSize()
	return fyne.NewSize(inner.Width*d.progress, inner.Height)
}

func (d *drawerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		inner := o.MinSize()
		o.Resize(fyne.NewSize(inner.Width, size.Height))
		o.Move(fyne.NewPos(size.Width-inner.Width, 0))
	}
}
