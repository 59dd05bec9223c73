package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"gitlab.com/tozd/go/errors"
)

const defaultConfigPath = ".wordedit.toml"

// fileConfig is the optional .wordedit.toml in the working directory;
// WORDEDIT_CONFIG overrides its location.
type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	JSON         bool   `toml:"json"`
	DefaultStyle string `toml:"default_style"`
}

// loadFileConfig reads the config file. A missing file at the default
// location is fine; a missing explicitly named file is an error.
func loadFileConfig() (fileConfig, error) {
	var cfg fileConfig

	path := os.Getenv("WORDEDIT_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
