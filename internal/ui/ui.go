package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// Reporter prints human-readable status lines tagged with a severity.
// The output is advisory and not meant to be parsed.
type Reporter struct {
	w     io.Writer
	color bool
}

// NewReporter returns a Reporter writing to w. Colors are used only when
// color is true.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// NewConsole returns a Reporter on stdout. Colors are enabled when stdout
// is a terminal, NO_COLOR is unset and noColor is false.
func NewConsole(noColor bool) *Reporter {
	return NewReporter(os.Stdout, !noColor && ColorEnabled(os.Stdout))
}

// ColorEnabled reports whether f is a terminal that should receive ANSI colors.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (r *Reporter) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + ColorReset
}

func (r *Reporter) print(mark, color, label, detail string) {
	fmt.Fprintf(r.w, "  %s %-15s %s\n", r.paint(color, mark), label, r.paint(color, detail))
}

func (r *Reporter) Info(label, detail string) {
	r.print("*", ColorCyan, label, detail)
}

func (r *Reporter) Success(label, detail string) {
	r.print("✔", ColorGreen, label, detail)
}

func (r *Reporter) Error(label, detail string) {
	r.print("✘", ColorRed, label, detail)
}

func (r *Reporter) Warning(label, detail string) {
	r.print("!", ColorYellow, label, detail)
}
