// Package output renders command results to the terminal.
//
// The check command's stdout format is a contract: scripts and tests
// depend on the exact banner, blank line, and congratulations text, so
// those lines are written unstyled. Styling is reserved for surfaces
// without a bit-exact contract, such as the rules listing.
package output

import (
	"fmt"
	"io"
)

// Renderer writes command output.
type Renderer struct {
	out    io.Writer
	err    io.Writer
	styles *Styles
}

// NewRenderer creates a renderer writing to the given streams.
func NewRenderer(out, err io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		err:    err,
		styles: DefaultStyles(),
	}
}

// Writer returns the underlying stdout writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Styles returns the lipgloss styles for non-contract output.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Diagnostic writes one lint finding in the fixed reporting format:
// the banner line, a blank line, then the diagnostic text followed by
// a newline.
func (r *Renderer) Diagnostic(text string) {
	_, _ = fmt.Fprintf(r.out, "encountered error:\n\n%s\n", text)
}

// CleanOutcome writes the fixed success line for a run in which no rule
// produced a diagnostic.
func (r *Renderer) CleanOutcome() {
	_, _ = fmt.Fprintln(r.out, "Congrats! Your table looks fine")
}

// Println writes a plain line to stdout.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to stdout.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Errorf writes formatted text to stderr.
func (r *Renderer) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.err, format, a...)
}
