package dispatcherrors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter formats dispatch errors the same Rust-like way the teacher
// formats compiler diagnostics — a colored "error[CODE]: message" header
// plus optional notes and help text — minus source positions, since this
// core has no source file to point into.
type Reporter struct{}

// NewReporter creates a Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Format renders err as a diagnostic string. Notes and help are optional
// extra context a caller (e.g. the demo REPL) wants attached; the core
// itself never supplies them.
func (r *Reporter) Format(err Coded, notes []string, help string) string {
	var b strings.Builder

	bold := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	helpColor := color.New(color.FgGreen).SprintFunc()
	noteColor := color.New(color.FgBlue).SprintFunc()

	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", bold("error"), err.Code(), err.Error()))
	b.WriteString(fmt.Sprintf("  %s %s\n", dim("│"), dim(Category(err.Code()))))

	for _, note := range notes {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", dim("│"), noteColor("note:"), note))
	}
	if help != "" {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", dim("│"), helpColor("help:"), help))
	}

	return b.String()
}

// FormatPlain renders err without a note/help tail — the common case for
// logging a resolution failure.
func (r *Reporter) FormatPlain(err Coded) string {
	return r.Format(err, nil, "")
}
