// Package config resolves where project-start reads its configuration and
// where generated projects are rooted.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the project-start configuration directory.
//
// Resolution:
//   - $PROJECT_START_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/project-start if set (respects XDG on any platform)
//   - %AppData%/project-start on Windows
//   - ~/.config/project-start on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("PROJECT_START_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "project-start")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "project-start")
		}
	}

	// macOS and Linux: ~/.config/project-start
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "project-start")
}
