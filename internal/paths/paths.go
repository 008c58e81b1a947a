package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "cmdkit"

// AppDataDir returns the application directory for configuration-like data
// (log file, choices file), creating it if needed. Uses os.UserConfigDir():
//   - macOS: ~/Library/Application Support/cmdkit
//   - Linux: $XDG_CONFIG_HOME/cmdkit or ~/.config/cmdkit
//   - Windows: %AppData%\cmdkit
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the directory for data the application manages
// itself, such as the audit database.
//   - macOS: ~/Library/Application Support/cmdkit
//   - Linux: $XDG_DATA_HOME/cmdkit or ~/.local/share/cmdkit
//   - Windows: %LOCALAPPDATA%\cmdkit
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the rc file path, ~/.cmdshrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cmdshrc"), nil
}

// LogFilePath returns the operator log file inside AppDataDir.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdsh.log")
}

// ChoicesFilePath returns the default choices file inside AppDataDir.
func ChoicesFilePath() string {
	return filepath.Join(AppDataDir(), "choices.yaml")
}

// AuditDBPath returns the audit database inside AppLocalDataDir.
func AuditDBPath() string {
	return filepath.Join(AppLocalDataDir(), "audit.db")
}
