// Package tray shows the status-bar menu: an enable toggle and a quit item.
package tray

import (
	"sync"

	"fyne.io/systray"
)

const (
	Title       = "HSS"
	ToggleLabel = "Enable Half Screen Splitter"
	QuitLabel   = "Quit Half Screen Splitter"
)

// Controller is the part of the app the menu drives.
type Controller interface {
	Toggle()
	Quit()
	Enabled() bool
}

// Menu owns the systray items. SetEnabled may be called from any goroutine,
// before or after the menu is shown.
type Menu struct {
	ctrl Controller

	mu      sync.Mutex
	enabled bool
	toggle  *systray.MenuItem
}

// New creates a menu for ctrl. Nothing is shown until Run.
func New(ctrl Controller) *Menu {
	return &Menu{ctrl: ctrl, enabled: ctrl.Enabled()}
}

// Run shows the menu and blocks on the UI loop until Close. It must be
// called from the main goroutine. onReady runs once the menu exists.
func (m *Menu) Run(onReady func()) {
	systray.Run(func() {
		m.build()
		if onReady != nil {
			onReady()
		}
	}, nil)
}

// Close tears the menu down and makes Run return.
func (m *Menu) Close() {
	systray.Quit()
}

// SetEnabled reflects the enabled flag in the toggle's checkmark.
func (m *Menu) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
	if m.toggle == nil {
		return
	}
	if enabled {
		m.toggle.Check()
	} else {
		m.toggle.Uncheck()
	}
	systray.SetTooltip(Tooltip(enabled))
}

func (m *Menu) build() {
	m.mu.Lock()
	enabled := m.enabled
	systray.SetTitle(Title)
	systray.SetTooltip(Tooltip(enabled))
	toggle := systray.AddMenuItemCheckbox(ToggleLabel, "Toggle window placement shortcuts", enabled)
	systray.AddSeparator()
	quit := systray.AddMenuItem(QuitLabel, "")
	m.toggle = toggle
	m.mu.Unlock()

	go func() {
		for {
			select {
			case <-toggle.ClickedCh:
				m.ctrl.Toggle()
			case <-quit.ClickedCh:
				m.ctrl.Quit()
				return
			}
		}
	}()
}

// Tooltip describes the enabled state.
func Tooltip(enabled bool) string {
	if enabled {
		return "Half Screen Splitter: shortcuts enabled"
	}
	return "Half Screen Splitter: shortcuts disabled"
}
