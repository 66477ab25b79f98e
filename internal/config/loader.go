package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/tell/internal/errors"
	"github.com/rileyhilliard/tell/pkg/xdg"
)

// Load reads config from the given path, applying defaults and TELL_*
// environment overrides. An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TELL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Default(), errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), errors.WrapWithCode(err, errors.ErrConfig,
			"Config file has invalid values",
			"Run 'tell init --force' to regenerate it")
	}
	return cfg, nil
}

// Find locates the config file using the search order:
//  1. Explicit path (from --config flag)
//  2. .tell.yaml in the current directory
//  3. config.yaml under the XDG config home
//
// Returns "" when no config file exists; that is not an error.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path is correct")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	global := filepath.Join(xdg.AppConfigDir(AppName), GlobalConfigName)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Write marshals the config to YAML at the given path. Used by 'tell init'.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Failed to write "+path,
			"Check directory permissions")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("level", def.Level)
	v.SetDefault("color", def.Color)
	v.SetDefault("live", def.Live)
	v.SetDefault("symbols", def.Symbols)
	v.SetDefault("tracebacks", def.Tracebacks)
}
