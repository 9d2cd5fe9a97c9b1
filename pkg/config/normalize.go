package config

import "github.com/Joshua-Ball1/Stopwatch/pkg/ptr"

const (
	defaultScale = 6
	defaultTitle = "stopwatch"
)

// Normalize fills in defaults for any field the file left unset. It
// runs before Validate, so validation sees the effective values.
func Normalize(cfg *Config) {
	if cfg.Display.Scale == nil {
		cfg.Display.Scale = ptr.Int(defaultScale)
	}
	if cfg.Display.Title == "" {
		cfg.Display.Title = defaultTitle
	}
	if cfg.Keys.Start == "" {
		cfg.Keys.Start = "s"
	}
	if cfg.Keys.Pause == "" {
		cfg.Keys.Pause = "p"
	}
	if cfg.Keys.Reset == "" {
		cfg.Keys.Reset = "r"
	}
}
