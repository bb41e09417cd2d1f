// FILE: ecosnap/src/cmd/ecosnap/commands/init.go
package commands

import (
	"fmt"
	"os"

	"ecosnap/src/internal/config"
)

// InitCommand writes a default configuration file
type InitCommand struct {
	term Terminal
}

// NewInitCommand creates a new init command
func NewInitCommand(term Terminal) *InitCommand {
	return &InitCommand{term: term}
}

func (c *InitCommand) Execute(args []string) error {
	fs := newFlagSet("init", c.term)
	path := fs.String("path", config.GetConfigPath(), "Config file to write")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("config file already exists: %s (use -force to overwrite)", *path)
	}

	if err := config.Defaults().SaveToFile(*path); err != nil {
		return err
	}

	fmt.Fprintf(c.term.Info, "Wrote default configuration to %s\n", *path)
	return nil
}

func (c *InitCommand) Description() string {
	return "Write a default config file"
}

func (c *InitCommand) Help() string {
	return `Init Command - Write a default configuration file

Usage:
  ecosnap init [-path file] [-force]

Options:
  -path    Destination (default: ecosnap.toml, or ECOSNAP_CONFIG_FILE)
  -force   Overwrite an existing file
`
}
