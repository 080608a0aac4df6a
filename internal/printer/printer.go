// Package printer handles output formatting and display
package printer

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/bethropolis/print-files/internal/utils"
)

// Printer writes file entries to the output destination
type Printer struct {
	output io.Writer
	count  atomic.Int64
	bytes  atomic.Int64
}

// New creates a Printer writing to output
func New(output io.Writer) *Printer {
	return &Printer{output: output}
}

// PrintFile writes one entry: the path on its own line, the content, then a
// blank line. Content is written as is.
func (p *Printer) PrintFile(path string, content string) error {
	n, err := fmt.Fprintf(p.output, "%s\n%s\n\n", path, content)
	p.bytes.Add(int64(n))
	if err != nil {
		return fmt.Errorf("printer: failed to write entry for '%s': %w", path, err)
	}
	p.count.Add(1)
	return nil
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}

// GetBytes returns the number of bytes written so far
func (p *Printer) GetBytes() int64 {
	return p.bytes.Load()
}

// Trace returns a hook printing each path it receives on its own line.
// Paths are colored only when useColors is set, whatever color.NoColor says.
func Trace(w io.Writer, useColors bool) utils.TraceFunc {
	c := color.New(color.FgCyan)
	if useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return func(path string) {
		c.Fprintln(w, path)
	}
}
