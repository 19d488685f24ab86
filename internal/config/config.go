// Package config loads flag defaults from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. BATCHRESIZE_QUALITY.
const Prefix = "batchresize"

// Settings holds defaults that command line flags may override.
type Settings struct {
	Quality    int    `envconfig:"QUALITY" default:"92"`
	Suffix     string `envconfig:"SUFFIX"`
	AutoOrient bool   `envconfig:"AUTO_ORIENT"`
	Verbose    bool   `envconfig:"VERBOSE"`
}

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	err := envconfig.Process(Prefix, &s)
	return s, err
}
