// Package report renders the diagnostic report: section headers, status
// lines, and verbatim command output.
//
// The report is plain text on a single io.Writer. Status symbols (✅ ⚠️ ❌ ⚪)
// are always emitted; color wraps the message text when the writer is a
// terminal and is never required to read the report.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const rulerWidth = 40

// Writer renders report sections to an output stream.
type Writer struct {
	out      io.Writer
	colorize bool
}

// NewWriter creates a report Writer. Color output is enabled only when
// requested and the writer is a terminal.
func NewWriter(out io.Writer, colorize bool) *Writer {
	return &Writer{
		out:      out,
		colorize: colorize && isTerminal(out),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Returns true only for os.Stdout and os.Stderr when they are TTYs;
// buffers and files never receive color codes.
func isTerminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	switch w {
	case os.Stdout:
		return isatty.IsTerminal(os.Stdout.Fd())
	case os.Stderr:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
	return false
}

// Banner writes a title framed by ruler lines, used for the report header
// and footer.
func (w *Writer) Banner(title string) {
	ruler := strings.Repeat("=", rulerWidth+10)
	fmt.Fprintf(w.out, "%s\n%s\n%s\n", ruler, title, ruler)
}

// Section starts a new report section: a blank line, the section title, and
// a ruler.
func (w *Writer) Section(title string) {
	fmt.Fprintf(w.out, "\n%s\n%s\n", title, strings.Repeat("-", rulerWidth))
}

// Passf writes an indented success line.
func (w *Writer) Passf(format string, args ...any) {
	w.statusf("✅", color.FgGreen, format, args...)
}

// Warnf writes an indented warning line.
func (w *Writer) Warnf(format string, args ...any) {
	w.statusf("⚠️", color.FgYellow, format, args...)
}

// Failf writes an indented error line.
func (w *Writer) Failf(format string, args ...any) {
	w.statusf("❌", color.FgRed, format, args...)
}

// Notef writes an indented neutral line for absent or unset findings.
func (w *Writer) Notef(format string, args ...any) {
	w.statusf("⚪", color.FgHiBlack, format, args...)
}

// Linef writes an indented plain line with no status symbol.
func (w *Writer) Linef(format string, args ...any) {
	fmt.Fprintf(w.out, "  %s\n", fmt.Sprintf(format, args...))
}

// Raw writes text verbatim followed by a newline, with no indentation.
// Used for command output samples where file:line prefixes must survive.
func (w *Writer) Raw(text string) {
	fmt.Fprintf(w.out, "%s\n", text)
}

// statusf writes an indented status line, coloring the message portion when
// color output is enabled.
func (w *Writer) statusf(symbol string, attr color.Attribute, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if w.colorize {
		message = color.New(attr).Sprint(message)
	}
	fmt.Fprintf(w.out, "  %s %s\n", symbol, message)
}
