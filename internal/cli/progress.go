package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// progressPrinter redraws a single percentage line in place.
type progressPrinter struct {
	w     io.Writer
	label string
	last  int
	drawn bool
}

func newProgressPrinter(w io.Writer, label string) *progressPrinter {
	return &progressPrinter{w: w, label: label, last: -1}
}

// Update redraws the line when the value changes by at least 0.1%.
func (p *progressPrinter) Update(done, total int) {
	if total <= 0 {
		return
	}
	permille := int(int64(done) * 1000 / int64(total))
	if permille == p.last {
		return
	}
	p.last = permille
	p.drawn = true
	fmt.Fprintf(p.w, "\r%s: %5.1f%%", p.label, float64(permille)/10)
}

// Finish ends the progress line.
func (p *progressPrinter) Finish() {
	if p.drawn {
		fmt.Fprintln(p.w)
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// terminalWidth returns the column count of w, or fallback when w is not a
// terminal.
func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	cols, _, err := term.GetSize(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
	if err != nil || cols <= 0 {
		return fallback
	}
	return cols
}
