// FILE: ecosnap/src/cmd/ecosnap/commands/history.go
package commands

import (
	"context"
	"fmt"

	"ecosnap/src/internal/filter"
	"ecosnap/src/internal/format"
)

// HistoryCommand prints the valid entries of the waste log
type HistoryCommand struct {
	load EnvLoader
	term Terminal
}

// NewHistoryCommand creates a new history command
func NewHistoryCommand(load EnvLoader, term Terminal) *HistoryCommand {
	return &HistoryCommand{load: load, term: term}
}

func (c *HistoryCommand) Execute(args []string) error {
	fs := newFlagSet("history", c.term)
	formatName := fs.String("format", "line", "Output format: line, json, raw, msgpack")
	last := fs.Int("n", 0, "Show only the last n entries (0 = all)")
	logic := fs.String("logic", filter.LogicOr, "How multiple -include patterns combine: or, and")
	array := fs.Bool("array", false, "Write the selection as a single document (json only)")

	var include, exclude []string
	fs.Func("include", "Keep labels matching this regex (repeatable)", func(v string) error {
		include = append(include, v)
		return nil
	})
	fs.Func("exclude", "Drop labels matching this regex (repeatable)", func(v string) error {
		exclude = append(exclude, v)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *last < 0 {
		return fmt.Errorf("invalid -n: %d", *last)
	}

	env, err := c.load()
	if err != nil {
		return err
	}

	formatter, err := format.New(*formatName, nil, env.Logger)
	if err != nil {
		return err
	}
	var batch format.BatchFormatter
	if *array {
		bf, ok := formatter.(format.BatchFormatter)
		if !ok {
			return fmt.Errorf("-array is not supported by the %s format", formatter.Name())
		}
		batch = bf
	}

	var filters []filter.Config
	if len(include) > 0 {
		filters = append(filters, filter.Config{Type: filter.TypeInclude, Logic: *logic, Patterns: include})
	}
	if len(exclude) > 0 {
		filters = append(filters, filter.Config{Type: filter.TypeExclude, Logic: filter.LogicOr, Patterns: exclude})
	}
	chain, err := filter.NewChain(filters, env.Logger)
	if err != nil {
		return err
	}

	entries, err := env.Service.History(context.Background())
	if err != nil {
		return err
	}
	entries = chain.Select(entries)
	if *last > 0 && len(entries) > *last {
		entries = entries[len(entries)-*last:]
	}

	if batch != nil {
		out, err := batch.FormatBatch(entries)
		if err != nil {
			return err
		}
		_, err = c.term.Out.Write(append(out, '\n'))
		return err
	}

	for _, entry := range entries {
		out, err := formatter.Format(entry)
		if err != nil {
			return err
		}
		if _, err := c.term.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func (c *HistoryCommand) Description() string {
	return "List logged scans"
}

func (c *HistoryCommand) Help() string {
	return `History Command - List the valid entries of the waste log

Usage:
  ecosnap history [-format line|json|raw|msgpack] [-array] [-n count] [-include re]... [-exclude re]...

Options:
  -format   line: as stored, json: one object per line, raw: label only,
            msgpack: concatenated MessagePack maps for export
  -array    With -format json, write one JSON array instead of one object per line
  -n        Show only the most recent matching entries
  -include  Keep entries whose label matches (repeatable)
  -logic    Combine -include patterns with 'or' (default) or 'and'
  -exclude  Drop entries whose label matches any pattern (repeatable)

Examples:
  # Harmful scans only
  ecosnap history -include '^Battery$' -include '^E-Waste$'
`
}
