// Package appsettings reads and writes a JSON settings file in the user's
// configuration directory.
package appsettings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const fileName = "settings.json"

// Manager loads and saves one application's settings file.
type Manager struct {
	appName string
	baseDir string // empty means os.UserConfigDir
}

// NewManager creates a manager for appName under the user config directory.
func NewManager(appName string) *Manager {
	return &Manager{appName: appName}
}

// NewManagerIn creates a manager rooted at baseDir instead of the user
// config directory.
func NewManagerIn(baseDir, appName string) *Manager {
	return &Manager{appName: appName, baseDir: baseDir}
}

// Path returns the path to the settings file.
func (m *Manager) Path() (string, error) {
	base := m.baseDir
	if base == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("get user config dir: %w", err)
		}
		base = dir
	}
	return filepath.Join(base, m.appName, fileName), nil
}

// Load decodes the settings file into settings. found is false when the
// file does not exist, which is not an error.
func (m *Manager) Load(settings any) (found bool, err error) {
	path, err := m.Path()
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read settings file: %w", err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return false, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return true, nil
}

// LoadOrInit loads settings, or writes the values already in settings as
// the initial file when none exists. created reports the latter.
func (m *Manager) LoadOrInit(settings any) (created bool, err error) {
	found, err := m.Load(settings)
	if err != nil || found {
		return false, err
	}
	if err := m.Save(settings); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes settings to disk, replacing the file atomically.
func (m *Manager) Save(settings any) error {
	path, err := m.Path()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".*")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error takes precedence
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}
