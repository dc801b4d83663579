package report

import (
	"io"

	"github.com/fatih/color"
)

// Console pairs the program's output streams: results on Out, diagnostics
// on Err.
type Console struct {
	Out io.Writer
	Err io.Writer

	red *color.Color
}

// NewConsole creates a Console over the given streams.
func NewConsole(out, errw io.Writer) *Console {
	return &Console{Out: out, Err: errw, red: color.New(color.FgRed)}
}

// Errorf writes one red diagnostic line to the error stream.
func (c *Console) Errorf(format string, args ...any) {
	c.red.Fprintf(c.Err, format+"\n", args...)
}
