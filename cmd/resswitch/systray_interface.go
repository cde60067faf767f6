package main

import (
	"errors"
	"log/slog"

	"github.com/energye/systray"
)

// SystrayInterface abstracts systray operations for testing.
type SystrayInterface interface {
	AddLabel(title string) error
	AddSeparator() error
	AddItem(title string, onClick func()) error
	SetTitle(title string)
	SetTooltip(tooltip string)
	SetIcon(iconBytes []byte)
	SetOnClick(fn func(menu systray.IMenu))
	SetOnRClick(fn func(menu systray.IMenu))
	Quit()
}

var errNoMenuItem = errors.New("systray returned no menu item")

// RealSystray implements SystrayInterface using the actual systray library.
type RealSystray struct{}

// AddLabel adds a disabled item used as a section heading.
func (*RealSystray) AddLabel(title string) error {
	item := systray.AddMenuItem(title, "")
	if item == nil {
		return errNoMenuItem
	}
	item.Disable()
	return nil
}

func (*RealSystray) AddSeparator() error {
	systray.AddSeparator()
	return nil
}

func (*RealSystray) AddItem(title string, onClick func()) error {
	slog.Debug("[SYSTRAY] AddMenuItem called", "title", title)
	item := systray.AddMenuItem(title, "")
	if item == nil {
		return errNoMenuItem
	}
	item.Click(onClick)
	return nil
}

func (*RealSystray) SetTitle(title string) {
	systray.SetTitle(title)
}

func (*RealSystray) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

func (*RealSystray) SetIcon(iconBytes []byte) {
	systray.SetIcon(iconBytes)
}

func (*RealSystray) SetOnClick(fn func(menu systray.IMenu)) {
	systray.SetOnClick(fn)
}

func (*RealSystray) SetOnRClick(fn func(menu systray.IMenu)) {
	systray.SetOnRClick(fn)
}

func (*RealSystray) Quit() {
	systray.Quit()
}
