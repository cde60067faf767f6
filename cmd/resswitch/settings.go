package main

import (
	"log/slog"
	"slices"

	"github.com/codeGROOVE-dev/resswitch/pkg/appsettings"
	"github.com/codeGROOVE-dev/resswitch/pkg/modes"
)

// Settings holds the user-editable preferences. The applied resolution is
// deliberately not stored.
type Settings struct {
	Favorites       []modes.Triple `json:"favorites"`
	NotifyOnFailure bool           `json:"notify_on_failure"`
}

func defaultSettings() Settings {
	return Settings{
		Favorites:       slices.Clone(modes.DefaultFavorites),
		NotifyOnFailure: true,
	}
}

func settingsManager() *appsettings.Manager {
	return appsettings.NewManager(appName)
}

// loadSettings reads the settings file, writing the defaults on first run
// so there is a file to edit. Any error falls back to the defaults.
func loadSettings(manager *appsettings.Manager) Settings {
	settings := defaultSettings()

	created, err := manager.LoadOrInit(&settings)
	if err != nil {
		slog.Error("Failed to load settings, using defaults", "error", err)
		return defaultSettings()
	}
	if created {
		path, _ := manager.Path() //nolint:errcheck // only used for logging
		slog.Info("Wrote default settings", "path", path)
	}

	if settings.Favorites == nil {
		settings.Favorites = slices.Clone(modes.DefaultFavorites)
	}
	slog.Info("Loaded settings",
		"favorites", len(settings.Favorites),
		"notify_on_failure", settings.NotifyOnFailure)
	return settings
}
