// Package paths locates the gerf configuration directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// ConfigDirVar is the environment variable overriding the config directory.
const ConfigDirVar = "GERF_CONFIG_DIR"

const defaultConfigDirUnexpanded = "~/.config/gerf"
const logFileName = "gerf.log"
const configFileName = "gerf.yaml"

// ConfigDir returns the config directory from a potential override string,
// the GERF_CONFIG_DIR environment variable and a default of ~/.config/gerf.
func ConfigDir(override string) (string, error) {
	// override is first precedence
	if override != "" {
		return homedir.Expand(override)
	}
	// Environment variable is second precedence
	if envDir := os.Getenv(ConfigDirVar); envDir != "" {
		return homedir.Expand(envDir)
	}
	// Default is third precedence
	dir, err := homedir.Expand(defaultConfigDirUnexpanded)
	if err != nil {
		return "", errors.Wrap(err, "could not expand the default config directory")
	}
	return dir, nil
}

// EnsureDir creates dir and its parents if they do not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create config directory %s", dir)
	}
	return nil
}

// LogFile returns the path of the log file inside dir.
func LogFile(dir string) string {
	return filepath.Join(dir, logFileName)
}

// ConfigFile returns the path of the optional config file inside dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, configFileName)
}
