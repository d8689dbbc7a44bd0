// Package console is the presentation layer for proofcheck.
//
// Every component that emits human-readable text receives a *Console rather
// than writing to os.Stdout directly, so tests can capture output with a
// bytes.Buffer and the MCP server can redirect it into tool results.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Console struct {
	out io.Writer
	err io.Writer

	success *color.Color
	failure *color.Color
	accent  *color.Color
}

// New returns a console writing to stdout/stderr.
func New() *Console {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters returns a console writing to the given writers.
func NewWithWriters(out, err io.Writer) *Console {
	return &Console{
		out:     out,
		err:     err,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		accent:  color.New(color.FgHiBlue),
	}
}

// Printf writes plain text to the output stream.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a plain line to the output stream.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Successf writes green text to the output stream.
func (c *Console) Successf(format string, args ...any) {
	c.success.Fprintf(c.out, format, args...)
}

// Errorf writes red text to the error stream.
func (c *Console) Errorf(format string, args ...any) {
	c.failure.Fprintf(c.err, format, args...)
}

// Accentf writes highlighted text to the output stream. Used for search hit
// names, mirroring the bright-blue styling of the result listing.
func (c *Console) Accentf(format string, args ...any) {
	c.accent.Fprintf(c.out, format, args...)
}
