// FILE: ecosnap/src/cmd/ecosnap/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"ecosnap/src/cmd/ecosnap/commands"
	"ecosnap/src/internal/render"
	"ecosnap/src/internal/version"

	"golang.org/x/term"
)

func main() {
	flagCfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagCfg = &FlagConfig{ShowHelp: true}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n\nRun 'ecosnap help' for usage\n", err)
			os.Exit(1)
		}
	}

	InitOutputHandler(flagCfg.Quiet)

	if flagCfg.ShowVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if flagCfg.ConfigFile != "" {
		os.Setenv("ECOSNAP_CONFIG_FILE", flagCfg.ConfigFile)
	}

	router := commands.NewCommandRouter(newEnvLoader(flagCfg), commands.Terminal{
		Out:    os.Stdout,
		Err:    os.Stderr,
		Info:   output.Status(),
		Render: terminalOptions(),
	})

	args := flagCfg.Args
	switch {
	case flagCfg.ShowHelp:
		args = []string{"help"}
	case len(args) == 0:
		args = []string{"serve"}
	}

	if err := router.Route(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			shutdownLogger()
			os.Exit(0)
		}
		FatalError(1, "Error: %v\n", err)
	}
	shutdownLogger()
}

// terminalOptions sizes and colors dashboard output for the attached terminal
func terminalOptions() render.Options {
	fd := int(os.Stdout.Fd())
	opts := render.Options{}

	if !term.IsTerminal(fd) {
		return opts
	}
	if width, _, err := term.GetSize(fd); err == nil {
		opts.Width = width
	}
	opts.Color = os.Getenv("NO_COLOR") == ""
	return opts
}
