// FILE: ecosnap/src/internal/config/saver.go
package config

import (
	"errors"
	"fmt"

	lconfig "github.com/lixenwraith/config"
)

// Saves the configuration to the specified file path.
func (c *Config) SaveToFile(path string) error {
	if path == "" {
		return fmt.Errorf("cannot save config: path is empty")
	}

	// Create a temporary lconfig instance just for saving
	lcfg, err := lconfig.NewBuilder().
		WithFile(path).
		WithTarget(c).
		WithFileFormat("toml").
		Build()
	if err != nil && !errors.Is(err, lconfig.ErrConfigNotFound) {
		return fmt.Errorf("failed to create config builder: %w", err)
	}
	if lcfg == nil {
		return fmt.Errorf("failed to create config builder for %s", path)
	}

	// lconfig's Save handles atomic writes
	if err := lcfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
