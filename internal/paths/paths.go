// Package paths resolves the storedesk configuration, data, and log
// locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user platform directories.
const AppName = "storedesk"

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".storedesk"
	DefaultDataDirName   = ".storedesk-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "STOREDESK_CONFIG_DIR"
	EnvDataDir   = "STOREDESK_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// userDir returns the per-user directory for AppName. On Linux it honors
// xdgVar and falls back to ~/<linuxFallback>; elsewhere it uses
// os.UserConfigDir (~/Library/Application Support, %APPDATA%).
func userDir(xdgVar string, linuxFallback ...string) (string, error) {
	if platformDir.goos == "linux" {
		if xdg := os.Getenv(xdgVar); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		parts := append([]string{home}, linuxFallback...)
		return filepath.Join(append(parts, AppName)...), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/storedesk (fallback ~/.config/storedesk)
// macOS:   ~/Library/Application Support/storedesk
// Windows: %APPDATA%/storedesk
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/storedesk (fallback ~/.local/share/storedesk)
// macOS and Windows: same as DefaultConfigDir.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", ".local", "share")
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > STOREDESK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configValue > STOREDESK_DATA_DIR env > $(CWD)/.storedesk-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, dir := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// LogFile returns the default log file inside dataDir.
func LogFile(dataDir string) string {
	return filepath.Join(dataDir, "logs", AppName+".log")
}
