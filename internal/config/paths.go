package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the uvctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/uvctl; on macOS
// to ~/Library/Application Support/uvctl; and on Windows to %AppData%/uvctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "uvctl"), nil
}

// DefaultFile returns <Dir>/config.yaml.
func DefaultFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogsDir returns the directory used for TUI session logs.
func LogsDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// HistoryFile returns the path of the recent-versions store.
func HistoryFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}
