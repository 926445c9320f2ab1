/*
File    : C-Like/config/config.go
*/

// Package config implements CLIKE's host-level configuration file:
// an optional `.clike.yml` file (cmd/clike reads the one in the working
// directory unless --config names another path), parsed with
// gopkg.in/yaml.v3. Flag values set explicitly on the command line
// always override the file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a `.clike.yml` file may supply. Every
// field has a zero value equivalent to "unset", so the CLI can tell a
// file-provided false apart from an absent key only where it matters
// (the three trace channels): absent means "let the flag default win".
type Config struct {
	Debug       *bool    `yaml:"debug"`
	Scope       *bool    `yaml:"scope"`
	Stack       *bool    `yaml:"stack"`
	IncludeDirs []string `yaml:"include_dirs"`
}

// Load reads and parses path. A missing file is not an error: it
// yields the zero Config, so callers may always pass a fixed default
// path (e.g. ".clike.yml") whether or not the user created one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveBool returns the config value for a trace channel unless flagSet
// reports that the corresponding CLI flag was explicitly passed, in
// which case flagVal (the flag's own value) wins.
func ResolveBool(cfgVal *bool, flagSet bool, flagVal bool) bool {
	if flagSet || cfgVal == nil {
		return flagVal
	}
	return *cfgVal
}
