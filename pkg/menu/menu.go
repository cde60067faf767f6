// Package menu lays out the tray menu for a classified set of display modes.
package menu

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/codeGROOVE-dev/resswitch/pkg/command"
	"github.com/codeGROOVE-dev/resswitch/pkg/display"
)

// FavoritesLabel heads the favorites section.
const FavoritesLabel = "Favorites"

// QuitLabel is the title of the last item.
const QuitLabel = "Quit"

// Tray is the part of the tray host the builder needs.
type Tray interface {
	AddLabel(title string) error
	AddSeparator() error
	AddItem(title string, onClick func()) error
}

// Sink receives commands from activated items. command.Channel is a Sink.
type Sink interface {
	Send(cmd command.Command) bool
}

// Label formats a mode title as WIDTHxHEIGHT@RATE.
func Label(width, height, refreshRate uint32) string {
	return strconv.FormatUint(uint64(width), 10) + "x" +
		strconv.FormatUint(uint64(height), 10) + "@" +
		strconv.FormatUint(uint64(refreshRate), 10)
}

// binding is the per-item state handed to the shared activation callback.
type binding struct {
	sink Sink
	cmd  command.Command
}

func (b binding) activate() {
	slog.Debug("[MENU] Item activated", "command", b.cmd.String())
	if !b.sink.Send(b.cmd) {
		slog.Info("[MENU] Ignoring click, previous selection still being applied", "command", b.cmd.String())
	}
}

// Build appends the favorites label, the favorite modes, a separator, the
// other modes, a separator and Quit. Any tray failure is returned; the
// menu is then unusable and the caller must not continue.
func Build(tray Tray, fav, other []display.Mode, sink Sink) error {
	if err := tray.AddLabel(FavoritesLabel); err != nil {
		return fmt.Errorf("add favorites label: %w", err)
	}
	if err := addModes(tray, fav, sink); err != nil {
		return err
	}
	if err := tray.AddSeparator(); err != nil {
		return fmt.Errorf("add separator: %w", err)
	}
	if err := addModes(tray, other, sink); err != nil {
		return err
	}
	if err := tray.AddSeparator(); err != nil {
		return fmt.Errorf("add separator: %w", err)
	}
	quit := binding{sink: sink, cmd: command.Quit()}
	if err := tray.AddItem(QuitLabel, quit.activate); err != nil {
		return fmt.Errorf("add quit item: %w", err)
	}

	slog.Info("[MENU] Menu built", "favorites", len(fav), "others", len(other))
	return nil
}

func addModes(tray Tray, modes []display.Mode, sink Sink) error {
	for _, m := range modes {
		title := Label(m.Width, m.Height, m.RefreshRate)
		b := binding{sink: sink, cmd: command.SwitchTo(m)}
		if err := tray.AddItem(title, b.activate); err != nil {
			return fmt.Errorf("add item %s: %w", title, err)
		}
	}
	return nil
}
