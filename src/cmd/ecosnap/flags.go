// FILE: ecosnap/src/cmd/ecosnap/flags.go
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagConfig holds the global command-line options
type FlagConfig struct {
	ConfigFile  string
	Quiet       bool
	ShowVersion bool
	ShowHelp    bool

	// Args are the command name and its arguments
	Args []string

	// Overrides are the set flags as "--section.key=value" config arguments
	Overrides []string
}

// Global flags that map onto config paths
var overridePaths = map[string]string{
	"store":      "store.path",
	"host":       "server.host",
	"port":       "server.port",
	"log-level":  "logging.level",
	"log-output": "logging.output",
}

func parseFlags(args []string) (*FlagConfig, error) {
	fc := &FlagConfig{}

	fs := flag.NewFlagSet("ecosnap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&fc.ConfigFile, "config", "", "Config file path")
	fs.StringVar(&fc.ConfigFile, "c", "", "Config file path")
	fs.BoolVar(&fc.Quiet, "quiet", false, "Suppress status output")
	fs.BoolVar(&fc.Quiet, "q", false, "Suppress status output")
	fs.BoolVar(&fc.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&fc.ShowVersion, "v", false, "Show version information")
	fs.BoolVar(&fc.ShowHelp, "help", false, "Show help")
	fs.BoolVar(&fc.ShowHelp, "h", false, "Show help")

	storePath := fs.String("store", "", "Waste log file")
	fs.String("host", "", "HTTP listen address")
	port := fs.Int("port", 0, "HTTP listen port")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logOutput := fs.String("log-output", "", "Log output: file, stdout, stderr, both, none")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *storePath == "" && isSet(fs, "store") {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	if isSet(fs, "port") && (*port < 1 || *port > 65535) {
		return nil, fmt.Errorf("invalid port: %d", *port)
	}

	if *logOutput != "" {
		validOutputs := map[string]bool{
			"file": true, "stdout": true, "stderr": true,
			"both": true, "none": true,
		}
		if !validOutputs[*logOutput] {
			return nil, fmt.Errorf("invalid log-output: %s (valid: file, stdout, stderr, both, none)", *logOutput)
		}
	}

	if *logLevel != "" {
		*logLevel = strings.ToLower(*logLevel)
		if _, err := parseLogLevel(*logLevel); err != nil {
			return nil, fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", *logLevel)
		}
	}

	// Only explicitly set flags override lower-precedence sources
	fs.Visit(func(f *flag.Flag) {
		if path, ok := overridePaths[f.Name]; ok {
			fc.Overrides = append(fc.Overrides, "--"+path+"="+f.Value.String())
		}
	})

	fc.Args = fs.Args()
	return fc, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
