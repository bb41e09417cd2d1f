// FILE: ecosnap/src/cmd/ecosnap/commands/tips.go
package commands

import (
	"ecosnap/src/internal/render"
	"ecosnap/src/internal/tip"
)

// TipsCommand prints the tip table
type TipsCommand struct {
	term Terminal
}

// NewTipsCommand creates a new tips command
func NewTipsCommand(term Terminal) *TipsCommand {
	return &TipsCommand{term: term}
}

func (c *TipsCommand) Execute(args []string) error {
	fs := newFlagSet("tips", c.term)
	asJSON := fs.Bool("json", false, "Print the tip table as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(c.term.Out, map[string]any{
			"tips":     tip.All(),
			"fallback": tip.Fallback,
		})
	}
	return render.New(c.term.Out, c.term.Render).Tips()
}

func (c *TipsCommand) Description() string {
	return "Show the eco tip for every category"
}

func (c *TipsCommand) Help() string {
	return `Tips Command - Show the eco tip for every waste category

Usage:
  ecosnap tips [-json]
`
}
