// Package paths provides centralized path handling for hyprconf.
// It implements XDG Base Directory specification compliance and owns
// the path identity rules (canonicalization) used by the resolution
// engine.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hyprconf/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for hyprconf
	EnvConfigDir = "HYPRCONF_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// HyprDirName is the directory name for hypr-family config files
	HyprDirName = "hypr"

	// LogFileName is the name of the log file
	LogFileName = "hyprconf.log"
)

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable. If both fail, it returns an error rather than using dangerous
// defaults.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// GetHomeDirectoryWithDefault returns the user's home directory or a default
// value. This should only be used in contexts where a default is acceptable.
func GetHomeDirectoryWithDefault(defaultDir string) string {
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return defaultDir
	}
	return homeDir
}

// ExpandHome expands the ~ character to the user's home directory.
// Returns an error if the home directory cannot be determined.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot expand ~")
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}

// ConfigDir returns the hyprconf configuration directory, respecting the
// HYPRCONF_CONFIG_DIR override before falling back to the XDG config home.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		expanded, err := ExpandHome(dir)
		if err == nil {
			return expanded
		}
		return dir
	}
	return filepath.Join(xdg.ConfigHome, HyprDirName)
}

// LogFilePath returns the path to the log file.
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state/hyprconf/.
func LogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := GetHomeDirectory()
		if err != nil {
			return LogFileName
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "hyprconf", LogFileName)
}

// NormalizePath expands the home prefix and converts the path to an
// absolute, cleaned form. Used for user-supplied paths at the CLI boundary.
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// Canonical resolves a path to its canonical form (absolute with symlinks
// resolved) for identity comparison during graph walks. When resolution
// fails, e.g. the file does not exist, the path is returned as given so
// nonexistent files still have a stable identity.
func Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
