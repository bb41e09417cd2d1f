// FILE: ecosnap/src/cmd/ecosnap/bootstrap_test.go
package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ecosnap/src/internal/classify"
	"ecosnap/src/internal/config"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger shuts the package logger down when the test ends.
// Register it after t.TempDir so the log file closes before the directory goes.
func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		shutdownLogger()
		logger = nil
	})
}

func TestInitializeLogger_OutputModes(t *testing.T) {
	testCases := []struct {
		name          string
		output        string
		target        string
		enableConsole bool
		disableFile   bool
		consoleTarget string
	}{
		{name: "None", output: "none", disableFile: true},
		{name: "Stdout", output: "stdout", enableConsole: true, disableFile: true, consoleTarget: "stdout"},
		{name: "Stderr", output: "stderr", enableConsole: true, disableFile: true, consoleTarget: "stderr"},
		{name: "File", output: "file"},
		{name: "Both", output: "both", enableConsole: true, consoleTarget: "stderr"},
		{name: "BothSplit", output: "both", target: "split", enableConsole: true, consoleTarget: "split"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Logging.Output = tc.output
			cfg.Logging.Level = "debug"
			cfg.Logging.File.Directory = t.TempDir()
			resetLogger(t)
			if tc.target != "" {
				cfg.Logging.Console.Target = tc.target
			}

			require.NoError(t, initializeLogger(cfg, false))

			got := logger.GetConfig()
			assert.Equal(t, log.LevelDebug, got.Level)
			assert.Equal(t, tc.enableConsole, got.EnableConsole)
			assert.Equal(t, tc.disableFile, got.DisableFile)
			if tc.consoleTarget != "" {
				assert.Equal(t, tc.consoleTarget, got.ConsoleTarget)
			}
			if !tc.disableFile {
				assert.Equal(t, cfg.Logging.File.Directory, got.Directory)
				assert.Equal(t, "ecosnap", got.Name)
			}

			logger.Info("msg", "logger started", "output", tc.output)
		})
	}
}

func TestInitializeLogger_Quiet(t *testing.T) {
	resetLogger(t)

	require.NoError(t, initializeLogger(config.Defaults(), true))

	got := logger.GetConfig()
	assert.True(t, got.DisableFile)
	assert.False(t, got.EnableConsole)
	assert.Greater(t, got.Level, log.LevelError)
}

func TestInitializeLogger_InvalidOutput(t *testing.T) {
	resetLogger(t)

	cfg := config.Defaults()
	cfg.Logging.Output = "syslog"
	assert.Error(t, initializeLogger(cfg, false))
}

func TestBootstrap_LoadsConfigAndStartsLogger(t *testing.T) {
	dir := t.TempDir()
	resetLogger(t)
	storePath := filepath.Join(dir, "data", "waste_log.txt")
	configPath := filepath.Join(dir, "ecosnap.toml")
	body := "[store]\npath = \"" + filepath.ToSlash(storePath) + "\"\n\n[logging]\noutput = \"none\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o644))

	t.Setenv("ECOSNAP_CONFIG_FILE", configPath)
	t.Setenv("ECOSNAP_CONFIG_DIR", "")

	env, err := bootstrap(&FlagConfig{ConfigFile: configPath, Overrides: []string{"--server.port=9100"}})
	require.NoError(t, err)

	assert.Equal(t, storePath, env.Config.Store.Path)
	assert.Equal(t, int64(9100), env.Config.Server.Port)
	assert.Same(t, logger, env.Logger)

	result, err := env.Service.Scan(context.Background(), classify.Image{Name: "bottle.png", Data: []byte{1}})
	require.NoError(t, err)

	data, err := os.ReadFile(storePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), " - "+result.Label)
}

func TestBootstrap_MissingNamedConfig(t *testing.T) {
	resetLogger(t)

	missing := filepath.Join(t.TempDir(), "absent.toml")
	t.Setenv("ECOSNAP_CONFIG_FILE", missing)
	t.Setenv("ECOSNAP_CONFIG_DIR", "")

	_, err := bootstrap(&FlagConfig{ConfigFile: missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}
