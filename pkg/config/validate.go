package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Display.Scale == nil {
		return fmt.Errorf("display.scale is unset (missing Normalize call)")
	}
	if *cfg.Display.Scale < 1 || *cfg.Display.Scale > 16 {
		return fmt.Errorf("display.scale must be between 1 and 16, got %d", *cfg.Display.Scale)
	}

	bindings := map[string]string{
		"keys.start": cfg.Keys.Start,
		"keys.pause": cfg.Keys.Pause,
		"keys.reset": cfg.Keys.Reset,
	}

	seen := make(map[string]string)
	for name, key := range bindings {
		if key == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s are both bound to %q", other, name, key)
		}
		seen[key] = name
	}

	return nil
}
