// FILE: ecosnap/src/cmd/ecosnap/commands/help.go
package commands

import (
	"fmt"
	"sort"
	"strings"
)

// generalHelpTemplate is the default help message shown when no specific command is requested.
const generalHelpTemplate = `EcoSnap: photograph your waste, log it, and track your EcoScore.

Usage:
  ecosnap [options] [command] [command options]

Commands:
%s

Without a command, ecosnap runs 'serve'.

Application Options:
  -c, -config <path>       Path to configuration file (default: ecosnap.toml)
  -q, -quiet               Suppress status output
  -v, -version             Display version information and exit
  -h, -help                Display this help message and exit

Overrides:
  -store <path>            Waste log file (store.path)
  -host <addr>             HTTP listen address (server.host)
  -port <n>                HTTP listen port (server.port)
  -log-level <level>       debug, info, warn, error (logging.level)
  -log-output <mode>       file, stdout, stderr, both, none (logging.output)

For command-specific help:
  ecosnap help <command>
  ecosnap <command> --help

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - CLI flags override all other settings
  - ECOSNAP_* environment variables override file settings
  - TOML configuration file, see 'ecosnap init'

Examples:
  # Classify a photo and show the updated dashboard
  ecosnap scan bottle.jpg

  # Serve the HTTP API on a custom port
  ecosnap -port 9000 serve
`

// HelpCommand handles the display of general or command-specific help messages.
type HelpCommand struct {
	router *CommandRouter
	term   Terminal
}

// NewHelpCommand creates a new help command handler.
func NewHelpCommand(router *CommandRouter, term Terminal) *HelpCommand {
	return &HelpCommand{router: router, term: term}
}

// Execute displays the appropriate help message based on the provided arguments.
func (c *HelpCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] != "" {
		cmdName := args[0]

		if handler, exists := c.router.GetCommand(cmdName); exists {
			_, err := fmt.Fprint(c.term.Out, handler.Help())
			return err
		}

		return fmt.Errorf("unknown command: %s", cmdName)
	}

	_, err := fmt.Fprintf(c.term.Out, generalHelpTemplate, c.formatCommandList())
	return err
}

func (c *HelpCommand) Description() string {
	return "Display help information"
}

func (c *HelpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  ecosnap help              Show general help
  ecosnap help <command>    Show help for a specific command
`
}

// formatCommandList creates a formatted and aligned list of all available commands.
func (c *HelpCommand) formatCommandList() string {
	commands := c.router.GetCommands()

	names := make([]string, 0, len(commands))
	maxLen := 0
	for name := range commands {
		names = append(names, name)
		maxLen = max(maxLen, len(name))
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		lines = append(lines, fmt.Sprintf("  %s%s%s", name, padding, commands[name].Description()))
	}

	return strings.Join(lines, "\n")
}
