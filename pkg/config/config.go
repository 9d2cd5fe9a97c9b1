package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the frontend configuration. It covers presentation and
// input only; the device's timing constants are fixed at build time.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
}

// ---- DISPLAY ----

type DisplayConfig struct {
	// Scale multiplies the base panel resolution to get the window
	// size. Optional; defaults to 6.
	Scale *int `yaml:"scale"`

	Title string `yaml:"title"`
}

// ---- KEYS ----

// KeysConfig binds keyboard keys to the three button lines. Values are
// key names as reported by the windowing backend ("s", "space", ...).
type KeysConfig struct {
	Start string `yaml:"start"`
	Pause string `yaml:"pause"`
	Reset string `yaml:"reset"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	Normalize(&cfg)
	return cfg
}

// Load reads, normalizes and validates a configuration file.
func Load(path string) (Config, error) {
	cfg := Config{}

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}

	Normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %q", path)
	}

	return cfg, nil
}
