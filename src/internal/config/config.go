// FILE: ecosnap/src/internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ecosnap/src/internal/core"

	lconfig "github.com/lixenwraith/config"
)

const envPrefix = "ECOSNAP_"

// Config is the complete application configuration
type Config struct {
	Store   StoreConfig   `toml:"store"`
	Server  *ServerConfig `toml:"server"`
	Logging *LogConfig    `toml:"logging"`
}

// StoreConfig locates the waste log
type StoreConfig struct {
	// Path of the append-only log file, relative to the working directory unless absolute
	Path string `toml:"path"`
}

func defaults() *Config {
	return &Config{
		Store: StoreConfig{
			Path: core.DefaultLogPath,
		},
		Server:  DefaultServerConfig(),
		Logging: DefaultLogConfig(),
	}
}

// Defaults returns a fresh copy of the default configuration
func Defaults() *Config {
	return defaults()
}

// LoadWithCLI builds the configuration from defaults, the config file, ECOSNAP_* environment
// variables and CLI overrides, in increasing order of precedence.
// Overrides use the "--section.key=value" form.
func LoadWithCLI(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix(envPrefix).
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		// A missing config file is not an error, defaults apply
		if !errors.Is(err, lconfig.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cfg == nil {
		return nil, fmt.Errorf("failed to load config from %s", configPath)
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	if err := validateConfig(finalConfig); err != nil {
		return nil, err
	}
	return finalConfig, nil
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = envPrefix + env
	return env
}

// GetConfigPath resolves the config file from ECOSNAP_CONFIG_FILE and ECOSNAP_CONFIG_DIR,
// falling back to ecosnap.toml in the working directory.
func GetConfigPath() string {
	if configFile := os.Getenv("ECOSNAP_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("ECOSNAP_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("ECOSNAP_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "ecosnap.toml")
	}

	return "ecosnap.toml"
}
