// FILE: ecosnap/src/cmd/ecosnap/bootstrap.go
package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"ecosnap/src/cmd/ecosnap/commands"
	"ecosnap/src/internal/classify"
	"ecosnap/src/internal/config"
	"ecosnap/src/internal/service"
	"ecosnap/src/internal/store"
	"ecosnap/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

// newEnvLoader returns a loader that bootstraps once and caches the result
func newEnvLoader(fc *FlagConfig) commands.EnvLoader {
	var (
		once sync.Once
		env  *commands.Env
		err  error
	)
	return func() (*commands.Env, error) {
		once.Do(func() {
			env, err = bootstrap(fc)
		})
		return env, err
	}
}

// bootstrap loads configuration, starts the logger and wires the service to the waste log
func bootstrap(fc *FlagConfig) (*commands.Env, error) {
	if fc.ConfigFile != "" {
		if _, err := os.Stat(config.GetConfigPath()); err != nil {
			return nil, fmt.Errorf("config file not found: %s", fc.ConfigFile)
		}
	}

	cfg, err := config.LoadWithCLI(fc.Overrides)
	if err != nil {
		return nil, err
	}

	if err := initializeLogger(cfg, fc.Quiet); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	svc := service.New(classify.NewRandom(nil), st, nil, logger)

	logger.Debug("msg", "EcoSnap initialized",
		"version", version.Short(),
		"config_file", config.GetConfigPath(),
		"store", st.Location(),
		"log_output", cfg.Logging.Output)

	return &commands.Env{
		Config:  cfg,
		Logger:  logger,
		Service: svc,
	}, nil
}

// initializeLogger configures and starts the logger based on configuration
func initializeLogger(cfg *config.Config, quiet bool) error {
	logger = log.NewLogger()

	configArgs, err := loggerArgs(cfg, quiet)
	if err != nil {
		return err
	}

	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return err
	}
	return logger.Start()
}

// loggerArgs maps the logging section onto the logger's key=value overrides
func loggerArgs(cfg *config.Config, quiet bool) ([]string, error) {
	if quiet {
		// In quiet mode, disable ALL logging output
		return []string{
			"disable_file=true",
			"enable_console=false",
			fmt.Sprintf("level=%d", log.LevelError+1),
		}, nil
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	configArgs := []string{fmt.Sprintf("level=%d", levelValue)}

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_console=false")

	case "stdout", "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target="+cfg.Logging.Output)

	case "file":
		configArgs = append(configArgs, "disable_file=false", "enable_console=false")
		configureFileLogging(&configArgs, cfg)

	case "both":
		configArgs = append(configArgs, "disable_file=false", "enable_console=true")
		configureFileLogging(&configArgs, cfg)
		configureConsoleTarget(&configArgs, cfg)

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if cfg.Logging.Console != nil && cfg.Logging.Console.Format != "" {
		configArgs = append(configArgs, "format="+cfg.Logging.Console.Format)
	}

	return configArgs, nil
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		// The logger stores max_size_mb and max_total_size_mb as kilobytes
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name),
			fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB*1024),
			fmt.Sprintf("max_total_size_mb=%d", cfg.Logging.File.MaxTotalSizeMB*1024))

		if cfg.Logging.File.RetentionHours > 0 {
			*configArgs = append(*configArgs,
				fmt.Sprintf("retention_period_hrs=%.1f", cfg.Logging.File.RetentionHours))
		}
	}
}

// configureConsoleTarget sets up console output parameters.
// "split" sends info/debug to stdout and warn/error to stderr.
func configureConsoleTarget(configArgs *[]string, cfg *config.Config) {
	target := "stderr"
	if cfg.Logging.Console != nil && cfg.Logging.Console.Target != "" {
		target = cfg.Logging.Console.Target
	}
	*configArgs = append(*configArgs, "console_target="+target)
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort, the logger can't report its own shutdown
			fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
		}
	}
}
