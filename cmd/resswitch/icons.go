package main

import (
	"log/slog"
	"sync"
)

var (
	iconOnce  sync.Once
	iconBytes []byte
)

// trayIcon renders the tray icon once in the format the platform's tray
// expects. encodeIcon lives in icons_windows.go and icons_other.go.
func trayIcon() []byte {
	iconOnce.Do(func() {
		data, err := encodeIcon()
		if err != nil {
			slog.Error("failed to render tray icon", "error", err)
			return
		}
		iconBytes = data
	})
	return iconBytes
}
