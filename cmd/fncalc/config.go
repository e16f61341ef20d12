package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".fncalc.yaml"

// config is read from a YAML file. Flags given on the command line win over
// the values found in the file.
type config struct {
	Prompt string `yaml:"prompt"`
	// Color forces colored errors on or off. Left unset, errors are colored
	// only when writing to a terminal.
	Color   *bool `yaml:"color"`
	Verbose bool  `yaml:"verbose"`
	// Preload lines are evaluated silently before anything else, one
	// statement per line.
	Preload []string `yaml:"preload"`
}

func defaultConfig() config {
	return config{
		Prompt: "> ",
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultConfigName)
}

// loadConfig reads the file at path on top of the defaults. A missing file
// is only an error when the user named it explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
