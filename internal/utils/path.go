package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in file paths
// Examples:
//   - "~/data/quotes.db" -> "/home/user/data/quotes.db"
//   - "$HOME/data" -> "/home/user/data"
//   - "/abs/path" -> "/abs/path" (unchanged)
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~/") || path == "~" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		if path == "~" {
			return homeDir, nil
		}

		path = filepath.Join(homeDir, path[2:])
	}

	return path, nil
}

// DataDir returns the per-user data directory for the application,
// honoring XDG_DATA_HOME and falling back to ~/.local/share.
func DataDir(appName string) (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", appName), nil
}
