// FILE: ecosnap/src/cmd/ecosnap/commands/util.go
package commands

import (
	"encoding/json"
	"flag"
	"io"
)

func newFlagSet(name string, term Terminal) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(term.Err)
	return fs
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
