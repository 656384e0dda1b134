// Package paths provides sudo-aware path resolution for jellyname.
//
// When running with sudo, these functions correctly resolve paths to the
// original user's directories (via SUDO_USER) instead of root's directories.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
)

// UserHomeDir returns the home directory of the actual user.
// If running with sudo, returns the SUDO_USER's home directory, not root's.
func UserHomeDir() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil {
			return u.HomeDir, nil
		}
		// Fall through if lookup fails
	}

	return os.UserHomeDir()
}

// UserConfigDir returns the config directory of the actual user.
// On Linux this is typically ~/.config
func UserConfigDir() (string, error) {
	homeDir, err := UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config"), nil
}

// JellynameDir returns the jellyname config directory.
// This is ~/.config/jellyname for the actual user.
func JellynameDir() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "jellyname"), nil
}

// ConfigPath returns the path to the jellyname config file.
// This is ~/.config/jellyname/config.toml for the actual user.
func ConfigPath() (string, error) {
	dir, err := JellynameDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the path to the rename history database.
// This is ~/.config/jellyname/history.db for the actual user.
func HistoryPath() (string, error) {
	dir, err := JellynameDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// LogPath returns the default log file path.
// This is ~/.config/jellyname/logs/jellyname.log for the actual user.
func LogPath() (string, error) {
	dir, err := JellynameDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "jellyname.log"), nil
}

// ActualUser returns the actual username (not root when using sudo).
func ActualUser() string {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		return sudoUser
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}
