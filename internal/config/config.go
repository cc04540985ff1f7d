// Package config loads the gerf settings from flags, the environment and an
// optional config file.
package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hailam/gerf/internal/ports"
	"github.com/hailam/gerf/internal/units"
)

// EnvPrefix is prepended to every key when looking it up in the environment.
const EnvPrefix = "GERF"

// Config keys.
const (
	KeyWarnSize = "warn_size"
	KeyMaxSize  = "max_size"
	KeyPath     = "path"
	KeyKind     = "kind"
	KeyWorkers  = "workers"
)

// Default values.
const (
	DefaultWarnSize = "64KB"
	DefaultMaxSize  = "1GB"
	DefaultPath     = "gerf.txt"
)

// Config is the resolved configuration of a single invocation.
type Config struct {
	// Generation above WarnSize needs the exceed flag or a confirmation.
	WarnSize uint64
	// Generation above MaxSize is always refused.
	MaxSize uint64
	Path    string
	Kind    ports.ContentKind
	Workers int
}

// New returns a viper instance with defaults set and the environment bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyWarnSize, DefaultWarnSize)
	v.SetDefault(KeyMaxSize, DefaultMaxSize)
	v.SetDefault(KeyPath, DefaultPath)
	v.SetDefault(KeyKind, string(ports.ContentKindWords))
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	return v
}

// ReadFile merges the config file at path into v. A missing file is only an
// error if required is set.
func ReadFile(v *viper.Viper, path string, required bool) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "could not read config file %s", path)
	}
	return nil
}

// Load resolves the values held by v.
func Load(v *viper.Viper) (*Config, error) {
	warn, err := units.ParseSize(v.GetString(KeyWarnSize), units.Byte)
	if err != nil {
		return nil, errors.Wrap(err, KeyWarnSize)
	}
	max, err := units.ParseSize(v.GetString(KeyMaxSize), units.Byte)
	if err != nil {
		return nil, errors.Wrap(err, KeyMaxSize)
	}
	kind, err := ports.ParseContentKind(v.GetString(KeyKind))
	if err != nil {
		return nil, errors.Wrap(err, KeyKind)
	}

	path := v.GetString(KeyPath)
	if path == "" {
		path = DefaultPath
	}
	workers := v.GetInt(KeyWorkers)
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Config{
		WarnSize: warn,
		MaxSize:  max,
		Path:     path,
		Kind:     kind,
		Workers:  workers,
	}, nil
}
