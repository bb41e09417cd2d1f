// FILE: ecosnap/src/cmd/ecosnap/commands/router.go
package commands

import (
	"fmt"
	"io"

	"ecosnap/src/internal/config"
	"ecosnap/src/internal/render"
	"ecosnap/src/internal/service"

	"github.com/lixenwraith/log"
)

// Handler defines the interface required for all subcommands.
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// Env carries the loaded configuration and the wired service.
type Env struct {
	Config  *config.Config
	Logger  *log.Logger
	Service *service.Service
}

// EnvLoader builds the Env on first use, so commands that never touch the waste log
// (help, version, init) run without loading config.
type EnvLoader func() (*Env, error)

// Terminal holds the output streams shared by all commands.
type Terminal struct {
	Out    io.Writer // command results
	Err    io.Writer // usage and diagnostics
	Info   io.Writer // status messages, io.Discard in quiet mode
	Render render.Options
}

// CommandRouter handles the routing of CLI arguments to the appropriate subcommand handler.
type CommandRouter struct {
	commands map[string]Handler
	term     Terminal
}

// NewCommandRouter creates and initializes the command router with all available commands.
func NewCommandRouter(load EnvLoader, term Terminal) *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		term:     term,
	}

	router.commands["serve"] = NewServeCommand(load, term)
	router.commands["scan"] = NewScanCommand(load, term)
	router.commands["dashboard"] = NewDashboardCommand(load, term)
	router.commands["history"] = NewHistoryCommand(load, term)
	router.commands["tips"] = NewTipsCommand(term)
	router.commands["init"] = NewInitCommand(term)
	router.commands["version"] = NewVersionCommand(term)
	router.commands["help"] = NewHelpCommand(router, term)

	return router
}

// Route executes the command named by args[0] with the remaining arguments.
func (r *CommandRouter) Route(args []string) error {
	if len(args) == 0 {
		return r.commands["help"].Execute(nil)
	}

	cmdName := args[0]
	handler, exists := r.commands[cmdName]
	if !exists {
		return fmt.Errorf("unknown command: %s\n\nRun 'ecosnap help' for usage", cmdName)
	}

	// Help flag after a command shows that command's help
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			_, err := fmt.Fprint(r.term.Out, handler.Help())
			return err
		}
	}

	return handler.Execute(args[1:])
}

// GetCommand returns a specific command handler by its name.
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetCommands returns a map of all registered commands.
func (r *CommandRouter) GetCommands() map[string]Handler {
	return r.commands
}
