// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Writer handles CLI output formatting.
type Writer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	quiet   bool
	verbose bool
}

// New creates a new Writer with default settings. Colour is enabled when
// stdout is a terminal and NO_COLOR is not set.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: !color.NoColor,
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables or disables debug output.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// SetColor enables or disables coloured output.
func (w *Writer) SetColor(enabled bool) {
	w.color = enabled
}

// Color reports whether coloured output is enabled.
func (w *Writer) Color() bool {
	return w.color
}

// Out returns the stdout writer. Checker diagnostics are written here.
func (w *Writer) Out() io.Writer {
	return w.out
}

// paint returns a function rendering text with the given attributes, or
// unchanged when colour is disabled.
func (w *Writer) paint(attrs ...color.Attribute) func(a ...interface{}) string {
	if !w.color {
		return fmt.Sprint
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println(format, args...)
}

// Debug prints a dimmed message to stderr in verbose mode only.
func (w *Writer) Debug(format string, args ...interface{}) {
	if !w.verbose {
		return
	}
	w.Errorln("%s", w.paint(color.Faint)("debug: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Errorln("%s %s", w.paint(color.FgYellow)("warning:"), fmt.Sprintf(format, args...))
}

// ErrorPrefix prints an error message with neartest prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	w.Errorln("%s %s", w.paint(color.FgRed)("neartest:"), fmt.Sprintf(format, args...))
}

// Section prints a section header (skipped in quiet mode).
func (w *Writer) Section(title string) {
	if w.quiet {
		return
	}
	w.Println("%s", w.paint(color.Bold)("=== "+title+" ==="))
}

// FixtureResult prints one status line per checked fixture (skipped in
// quiet mode). Failed fixtures have already written their diagnostics.
func (w *Writer) FixtureResult(name string, passed bool) {
	if passed {
		w.Info("%s %s", w.paint(color.FgGreen)("ok  "), name)
		return
	}
	w.Info("%s %s", w.paint(color.FgRed)("FAIL"), name)
}

// List prints items as an indented bullet list.
func (w *Writer) List(items []string) {
	for _, item := range items {
		w.Println("    - %s", item)
	}
}

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	w.Println("%s", w.paint(color.Bold, color.FgCyan)(title))
}

// HelpSection formats a section header (e.g., "Commands:").
func (w *Writer) HelpSection(title string) {
	w.Println("")
	w.Println("%s", w.paint(color.Bold, color.FgYellow)(title))
}

// HelpCommand formats a command with its description.
func (w *Writer) HelpCommand(name, description string, width int) {
	padding := width - len(name)
	if padding < 0 {
		padding = 0
	}
	w.Println("  %s%s  %s", w.paint(color.Bold, color.FgCyan)(name), strings.Repeat(" ", padding), w.paint(color.Faint)(description))
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	padding := width - len(name)
	if padding < 0 {
		padding = 0
	}
	w.Println("  %s%s  %s", w.paint(color.FgYellow)(name), strings.Repeat(" ", padding), w.paint(color.Faint)(description))
}

// HelpUsage formats usage lines.
func (w *Writer) HelpUsage(usage string) {
	w.Println("  %s", usage)
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	w.Println("  %s", w.paint(color.FgCyan)(command))
	if description != "" {
		w.Println("      %s", w.paint(color.Faint)(description))
	}
}

// SummaryHeader prints a summary section header.
func (w *Writer) SummaryHeader(title string) {
	w.Println("")
	w.Println("%s", w.paint(color.Bold, color.FgCyan)("=== "+title+" ==="))
	w.Println("")
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	w.Println("  %s %s", w.paint(color.Faint)(label+":"), value)
}

// SummaryPassed prints a passed items summary.
func (w *Writer) SummaryPassed(label, value string) {
	w.Println("  %s %s", w.paint(color.Faint)(label+":"), w.paint(color.FgGreen)(value))
}

// SummaryFailed prints a failed items summary.
func (w *Writer) SummaryFailed(label, value string) {
	w.Println("  %s %s", w.paint(color.Faint)(label+":"), w.paint(color.FgRed)(value))
}

// FinalSuccess prints a final success message in green.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.paint(color.FgGreen)(fmt.Sprintf(format, args...)))
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.paint(color.FgRed)(fmt.Sprintf(format, args...)))
}

// ValidationSuccess prints a validation success line.
func (w *Writer) ValidationSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s %s", w.paint(color.FgGreen)("✓"), msg)
	} else {
		w.Println("ok   %s", msg)
	}
}

// ValidationFailure prints a validation failure line to stderr.
func (w *Writer) ValidationFailure(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%s %s", w.paint(color.FgRed)("✗"), msg)
	} else {
		w.Errorln("FAIL %s", msg)
	}
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	w.Println("%s", w.paint(color.Faint)(fmt.Sprintf(format, args...)))
}
