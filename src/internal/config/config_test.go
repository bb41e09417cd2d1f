// FILE: ecosnap/src/internal/config/config_test.go
package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, "data/waste_log.txt", cfg.Store.Path)
	assert.Equal(t, int64(8501), cfg.Server.Port)
}

func TestValidateConfig_FillsMissingSections(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Path: "log.txt"}}
	require.NoError(t, validateConfig(cfg))
	assert.NotNil(t, cfg.Logging)
	assert.NotNil(t, cfg.Server)
}

func TestValidateConfig_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "EmptyStorePath",
			mutate: func(c *Config) { c.Store.Path = "" },
			errMsg: "store",
		},
		{
			name:   "BadLogOutput",
			mutate: func(c *Config) { c.Logging.Output = "syslog" },
			errMsg: "invalid log output mode",
		},
		{
			name:   "BadLogLevel",
			mutate: func(c *Config) { c.Logging.Level = "trace" },
			errMsg: "invalid log level",
		},
		{
			name:   "FileOutputWithoutFileSection",
			mutate: func(c *Config) { c.Logging.Output = "file"; c.Logging.File = nil },
			errMsg: "logging.file",
		},
		{
			name:   "BadConsoleTarget",
			mutate: func(c *Config) { c.Logging.Console.Target = "printer" },
			errMsg: "invalid console target",
		},
		{
			name:   "PortOutOfRange",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			errMsg: "invalid port",
		},
		{
			name:   "BadHost",
			mutate: func(c *Config) { c.Server.Host = "not a host" },
			errMsg: "invalid host",
		},
		{
			name:   "ZeroUpload",
			mutate: func(c *Config) { c.Server.MaxUploadMB = 0 },
			errMsg: "max_upload_mb",
		},
		{
			name:   "ZeroRate",
			mutate: func(c *Config) { c.Server.RateLimit.RequestsPerSecond = 0 },
			errMsg: "requests_per_second",
		},
		{
			name:   "ZeroBurst",
			mutate: func(c *Config) { c.Server.RateLimit.BurstSize = 0 },
			errMsg: "burst_size",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestValidateConfig_DisabledRateLimitSkipsChecks(t *testing.T) {
	cfg := Defaults()
	cfg.Server.RateLimit = &RateLimitConfig{Enabled: false}
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateServerConfig_Defaults(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Host = ""
	cfg.ReadTimeoutMS = 0
	cfg.RateLimit.CleanupIntervalSec = 0

	require.NoError(t, validateServerConfig(cfg))
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, int64(10000), cfg.ReadTimeoutMS)
	assert.Equal(t, int64(60), cfg.RateLimit.CleanupIntervalSec)
}

func TestCustomEnvTransform(t *testing.T) {
	assert.Equal(t, "ECOSNAP_STORE_PATH", customEnvTransform("store.path"))
	assert.Equal(t, "ECOSNAP_SERVER_RATE_LIMIT_BURST_SIZE", customEnvTransform("server.rate_limit.burst_size"))
}

func TestGetConfigPath(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		t.Setenv("ECOSNAP_CONFIG_FILE", "")
		t.Setenv("ECOSNAP_CONFIG_DIR", "")
		assert.Equal(t, "ecosnap.toml", GetConfigPath())
	})

	t.Run("DirOnly", func(t *testing.T) {
		t.Setenv("ECOSNAP_CONFIG_FILE", "")
		t.Setenv("ECOSNAP_CONFIG_DIR", "/etc/ecosnap")
		assert.Equal(t, filepath.Join("/etc/ecosnap", "ecosnap.toml"), GetConfigPath())
	})

	t.Run("RelativeFileInDir", func(t *testing.T) {
		t.Setenv("ECOSNAP_CONFIG_FILE", "prod.toml")
		t.Setenv("ECOSNAP_CONFIG_DIR", "/etc/ecosnap")
		assert.Equal(t, filepath.Join("/etc/ecosnap", "prod.toml"), GetConfigPath())
	})

	t.Run("AbsoluteFile", func(t *testing.T) {
		t.Setenv("ECOSNAP_CONFIG_FILE", "/tmp/custom.toml")
		t.Setenv("ECOSNAP_CONFIG_DIR", "/etc/ecosnap")
		assert.Equal(t, "/tmp/custom.toml", GetConfigPath())
	})
}
