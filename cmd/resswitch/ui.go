// Package main - ui.go builds the tray menu and runs the control loop.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/codeGROOVE-dev/resswitch/cmd/resswitch/x11tray"
	"github.com/codeGROOVE-dev/resswitch/pkg/command"
	"github.com/codeGROOVE-dev/resswitch/pkg/display"
	"github.com/codeGROOVE-dev/resswitch/pkg/menu"
	"github.com/codeGROOVE-dev/resswitch/pkg/modes"
	"github.com/energye/systray"
)

func (app *App) onReady(ctx context.Context) {
	slog.Info("System tray ready")

	app.tray.SetOnClick(showMenu)
	app.tray.SetOnRClick(showMenu)

	if iconBytes := trayIcon(); len(iconBytes) > 0 {
		app.tray.SetIcon(iconBytes)
	}
	app.tray.SetTitle(appTitle)
	app.updateTooltip()

	if err := app.buildMenu(); err != nil {
		// Without a menu there is no way to quit, so give up right away.
		slog.Error("FATAL: Failed to build tray menu", "error", err)
		app.exitCode = exitMenuFailure
		app.tray.Quit()
		return
	}

	go app.runLoop(ctx)
}

// buildMenu enumerates the display modes once and lays them out.
func (app *App) buildMenu() error {
	fav, other := modes.Classify(display.Enumerate(app.system), app.favorites)
	slog.Info("[MENU] Display modes classified", "favorites", len(fav), "others", len(other))
	for _, m := range fav {
		slog.Debug("[MENU] Favorite mode", "mode", m.String())
	}

	if err := menu.Build(app.tray, fav, other, app.commands); err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	return nil
}

// runLoop consumes commands until Quit, then shuts the tray down, which
// makes systray.Run return in main.
func (app *App) runLoop(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("PANIC in control loop", "panic", r)
			app.exitCode = exitStartup
		}
		app.tray.Quit()
	}()

	loop := command.NewLoop(app.commands.Recv(), app.system, app.pollInterval)
	loop.OnApplied = func(display.Mode) { app.updateTooltip() }
	loop.OnApplyError = app.applyFailed

	if err := loop.Run(ctx); err != nil {
		slog.Info("[LOOP] Control loop ended", "reason", err)
	}
}

func (app *App) applyFailed(m display.Mode, err error) {
	if app.notifier == nil {
		return
	}
	app.notifier.ApplyFailed(m, err)
}

// updateTooltip shows the active mode next to the app title.
func (app *App) updateTooltip() {
	app.tray.SetTooltip(tooltip(app.system))
}

func tooltip(sys displaySystem) string {
	m, ok := sys.Current()
	if !ok {
		return appTitle
	}
	return appTitle + " - " + menu.Label(m.Width, m.Height, m.RefreshRate)
}

// showMenu opens the menu on click. On Linux the StatusNotifierItem host
// passes no menu, so the DBus ContextMenu call is used instead.
func showMenu(m systray.IMenu) {
	if m == nil {
		if runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
			x11tray.ShowContextMenu()
		}
		return
	}
	if err := m.ShowMenu(); err != nil {
		slog.Warn("[TRAY] Failed to show menu", "error", err)
	}
}
