// Package appdir resolves the platform application data directory.
package appdir

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// ErrUnresolved is returned when no data directory can be derived for the platform.
var ErrUnresolved = errors.New("appdir: unable to resolve application data directory")

// Resolve returns the data directory for the application identifier, e.g.
// ~/.local/share/com.hasu.todo on linux.
func Resolve(identifier string) (string, error) {
	home, _ := os.UserHomeDir()
	return resolve(runtime.GOOS, os.Getenv, home, identifier)
}

func resolve(goos string, getenv func(string) string, home, identifier string) (string, error) {
	if identifier == "" {
		return "", ErrUnresolved
	}
	var base string
	switch goos {
	case "android":
		return "/data/data/" + identifier + "/files", nil
	case "darwin", "ios":
		if home != "" {
			base = filepath.Join(home, "Library", "Application Support")
		}
	case "windows":
		base = getenv("APPDATA")
	default:
		if base = getenv("XDG_DATA_HOME"); base == "" || !filepath.IsAbs(base) {
			base = ""
			if home != "" {
				base = filepath.Join(home, ".local", "share")
			}
		}
	}
	if base == "" {
		return "", ErrUnresolved
	}
	return filepath.Join(base, identifier), nil
}
