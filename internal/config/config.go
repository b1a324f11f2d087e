// Package config resolves default generation settings from a config file
// and TONAL_* environment variables. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/shade"
	"github.com/spf13/viper"
)

// Preview policies.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// EnvPrefix is the prefix of environment overrides, e.g. TONAL_MODE.
const EnvPrefix = "TONAL"

// Config holds the resolved defaults for the generate command.
type Config struct {
	Mode    shade.BlendMode
	Factor  *float64
	Format  string
	Name    string
	Preview string

	// File is the config file that was read, if any.
	File string
}

// DefaultPath returns $XDG_CONFIG_HOME/tonal/config.yaml (or the platform
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tonal", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", shade.BlendOpacity.String())
	v.SetDefault("format", "text")
	v.SetDefault("name", "primary")
	v.SetDefault("preview", PreviewAuto)
}

// Load reads path, or DefaultPath when path is empty, and applies
// environment overrides. A missing default file is not an error; a missing
// explicit file is.
func Load(path string, logger hclog.Logger) (*Config, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("config")

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := &Config{}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		switch err := v.ReadInConfig(); {
		case err == nil:
			cfg.File = path
			logger.Debug("read config file", "path", path)
		case !explicit && errors.Is(err, os.ErrNotExist):
			logger.Trace("no config file", "path", path)
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	mode, err := shade.ParseBlendMode(v.GetString("mode"))
	if err != nil {
		return nil, fmt.Errorf("invalid mode in config: %w", err)
	}
	cfg.Mode = mode

	if v.IsSet("factor") {
		f := v.GetFloat64("factor")
		cfg.Factor = &f
	}

	cfg.Format = v.GetString("format")
	cfg.Name = v.GetString("name")
	cfg.Preview = v.GetString("preview")
	if !slices.Contains([]string{PreviewAuto, PreviewAlways, PreviewNever}, cfg.Preview) {
		return nil, fmt.Errorf("invalid preview %q in config (valid: auto, always, never)", cfg.Preview)
	}

	logger.Debug("resolved defaults", "mode", cfg.Mode, "format", cfg.Format, "name", cfg.Name, "preview", cfg.Preview)
	return cfg, nil
}
