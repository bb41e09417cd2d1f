// FILE: ecosnap/src/internal/config/validation.go
package config

import (
	"fmt"
	"net"
	"strings"
)

// validateConfig is the centralized validator for the entire configuration.
// Missing optional sections are filled with defaults.
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if strings.TrimSpace(cfg.Store.Path) == "" {
		return fmt.Errorf("store: path cannot be empty")
	}

	if cfg.Logging == nil {
		cfg.Logging = DefaultLogConfig()
	}
	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if cfg.Server == nil {
		cfg.Server = DefaultServerConfig()
	}
	if err := validateServerConfig(cfg.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true,
		"both": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Output == "file" || cfg.Output == "both" {
		if cfg.File == nil {
			return fmt.Errorf("file output requires a [logging.file] section")
		}
		if strings.TrimSpace(cfg.File.Directory) == "" {
			return fmt.Errorf("file directory cannot be empty")
		}
		if strings.TrimSpace(cfg.File.Name) == "" {
			return fmt.Errorf("file name cannot be empty")
		}
	}

	if cfg.Console != nil {
		validTargets := map[string]bool{
			"stdout": true, "stderr": true, "split": true,
		}
		if !validTargets[cfg.Console.Target] {
			return fmt.Errorf("invalid console target: %s", cfg.Console.Target)
		}

		validFormats := map[string]bool{
			"txt": true, "json": true, "": true,
		}
		if !validFormats[cfg.Console.Format] {
			return fmt.Errorf("invalid console format: %s", cfg.Console.Format)
		}
	}

	return nil
}

func validateServerConfig(cfg *ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}

	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if net.ParseIP(cfg.Host) == nil && cfg.Host != "localhost" {
		return fmt.Errorf("invalid host: %s", cfg.Host)
	}

	if cfg.MaxUploadMB <= 0 || cfg.MaxUploadMB > 1024 {
		return fmt.Errorf("max_upload_mb must be between 1 and 1024: %d", cfg.MaxUploadMB)
	}
	if cfg.ReadTimeoutMS <= 0 {
		cfg.ReadTimeoutMS = 10000
	}
	if cfg.WriteTimeoutMS <= 0 {
		cfg.WriteTimeoutMS = 10000
	}

	if rl := cfg.RateLimit; rl != nil && rl.Enabled {
		if rl.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit: requests_per_second must be positive: %v", rl.RequestsPerSecond)
		}
		if rl.BurstSize < 1 {
			return fmt.Errorf("rate_limit: burst_size must be at least 1: %d", rl.BurstSize)
		}
		if rl.CleanupIntervalSec <= 0 {
			rl.CleanupIntervalSec = 60
		}
	}

	return nil
}
