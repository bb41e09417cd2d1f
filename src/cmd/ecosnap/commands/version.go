// FILE: ecosnap/src/cmd/ecosnap/commands/version.go
package commands

import (
	"fmt"

	"ecosnap/src/internal/version"
)

// VersionCommand handles version display
type VersionCommand struct {
	term Terminal
}

// NewVersionCommand creates a new version command
func NewVersionCommand(term Terminal) *VersionCommand {
	return &VersionCommand{term: term}
}

func (c *VersionCommand) Execute(args []string) error {
	_, err := fmt.Fprintln(c.term.Out, version.String())
	return err
}

func (c *VersionCommand) Description() string {
	return "Show version information"
}

func (c *VersionCommand) Help() string {
	return `Version Command - Show EcoSnap version information

Usage:
  ecosnap version
  ecosnap -version

Output includes:
  - Version number
  - Git commit hash (if available)
  - Build date
  - Go version used for compilation
`
}
