// FILE: ecosnap/src/cmd/ecosnap/commands/scan.go
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ecosnap/src/internal/classify"
	"ecosnap/src/internal/render"
)

// ScanCommand classifies a local image and records the result
type ScanCommand struct {
	load EnvLoader
	term Terminal
}

// NewScanCommand creates a new scan command
func NewScanCommand(load EnvLoader, term Terminal) *ScanCommand {
	return &ScanCommand{load: load, term: term}
}

func (c *ScanCommand) Execute(args []string) error {
	fs := newFlagSet("scan", c.term)
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("scan requires exactly one image path")
	}

	path := fs.Arg(0)
	if !classify.Supported(path) {
		return fmt.Errorf("unsupported image type: %s (accepted: %s)",
			filepath.Base(path), strings.Join(classify.Extensions(), ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("image is empty: %s", path)
	}

	env, err := c.load()
	if err != nil {
		return err
	}

	if limit := env.Config.Server.MaxUploadMB * 1024 * 1024; limit > 0 && info.Size() > limit {
		return fmt.Errorf("image too large: %d bytes exceeds %d MB", info.Size(), env.Config.Server.MaxUploadMB)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	res, err := env.Service.Scan(context.Background(), classify.Image{Name: filepath.Base(path), Data: data})
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(c.term.Out, res)
	}
	return render.New(c.term.Out, c.term.Render).Result(res)
}

func (c *ScanCommand) Description() string {
	return "Classify an image and log it"
}

func (c *ScanCommand) Help() string {
	return `Scan Command - Classify a waste image and append it to the log

Usage:
  ecosnap scan [-json] <image>

Options:
  -json    Print the label, tip and dashboard as JSON

Accepted image types: .jpg, .jpeg, .png
The image content is not inspected; the label is chosen at random.
`
}
