// Package logging builds the hclog logger shared by the commands.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger named "voronoi" writing to out.
// verbose enables debug output; quiet limits output to errors and wins
// over verbose.
func New(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            "voronoi",
		Output:          out,
		Level:           level,
		Color:           hclog.AutoColor,
		DisableTime:     !verbose,
		IncludeLocation: false,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "voronoi",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
