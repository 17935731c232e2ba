package app

import (
	"fmt"

	"pocket-calc/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear", func() {
			_ = a.calculator.HandleKey("C")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		}),
	)

	viewItems := make([]*fyne.MenuItem, 0, len(views.Screens)+2)
	for _, screen := range views.Screens {
		viewItems = append(viewItems, fyne.NewMenuItem(screen, func() {
			if err := a.view.ShowScreen(screen); err != nil {
				a.view.ShowError(err)
			}
		}))
	}
	viewItems = append(viewItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Navigation", a.view.ToggleMenu),
	)
	viewMenu := fyne.NewMenu("View", viewItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About "+AppName,
				fmt.Sprintf("%s %s\nCalculator and digital clock", AppName, AppVersion),
				a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}
