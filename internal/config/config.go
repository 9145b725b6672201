package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	envDataDir = "FOLIOTRACK_DATA_DIR"
	appDirName = "foliotrack"
	dbFileName = "foliotrack.db"
)

var runtimeDataDir string
var runtimePort = 8000

// SetRuntimeDataDir overrides the data directory for this process.
func SetRuntimeDataDir(dir string) {
	runtimeDataDir = dir
}

// SetRuntimePort overrides the server port for this process.
func SetRuntimePort(port int) {
	if port > 0 {
		runtimePort = port
	}
}

// GetRuntimePort returns the effective server port.
func GetRuntimePort() int {
	return runtimePort
}

// GetDataDir resolves the data directory: runtime override, then the
// FOLIOTRACK_DATA_DIR environment variable, then the platform user config
// directory. The directory is created if missing.
func GetDataDir() (string, error) {
	dir := runtimeDataDir
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(envDataDir))
	}
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			home, homeErr := os.UserHomeDir()
			if homeErr != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config")
		}
		dir = filepath.Join(configDir, appDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetDBPath returns the sqlite database path inside the data directory.
func GetDBPath() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

// GetLogDir returns the log directory inside the data directory.
func GetLogDir() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}
