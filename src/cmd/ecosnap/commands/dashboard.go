// FILE: ecosnap/src/cmd/ecosnap/commands/dashboard.go
package commands

import (
	"context"

	"ecosnap/src/internal/render"
)

// DashboardCommand prints the waste chart and EcoScore
type DashboardCommand struct {
	load EnvLoader
	term Terminal
}

// NewDashboardCommand creates a new dashboard command
func NewDashboardCommand(load EnvLoader, term Terminal) *DashboardCommand {
	return &DashboardCommand{load: load, term: term}
}

func (c *DashboardCommand) Execute(args []string) error {
	fs := newFlagSet("dashboard", c.term)
	asJSON := fs.Bool("json", false, "Print the dashboard as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	env, err := c.load()
	if err != nil {
		return err
	}

	dash, err := env.Service.Dashboard(context.Background())
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(c.term.Out, dash)
	}
	return render.New(c.term.Out, c.term.Render).Dashboard(dash)
}

func (c *DashboardCommand) Description() string {
	return "Show category counts and EcoScore"
}

func (c *DashboardCommand) Help() string {
	return `Dashboard Command - Show the waste chart and EcoScore

Usage:
  ecosnap dashboard [-json]

Malformed log lines are skipped. With no valid entries no score is shown.
`
}
