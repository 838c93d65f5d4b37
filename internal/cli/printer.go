// Package cli renders check results for terminal output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/potools/pocheck/internal/checker"
	"github.com/potools/pocheck/internal/words"
)

// Printer writes diagnostics to a terminal, coloring by severity.
type Printer struct {
	out            io.Writer
	bold           *color.Color
	severityColors map[checker.Severity]*color.Color
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:  out,
		bold: color.New(color.Bold),
		severityColors: map[checker.Severity]*color.Color{
			checker.SeverityInfo:    color.New(color.FgCyan),
			checker.SeverityWarning: color.New(color.FgYellow),
			checker.SeverityError:   color.New(color.FgRed),
		},
	}
}

// PrintFile writes every diagnostic for one catalog file.
func (p *Printer) PrintFile(path string, diagnostics []checker.Diagnostic) {
	for _, diagnostic := range diagnostics {
		severity := p.severityColors[diagnostic.Severity].Sprint(diagnostic.Severity.String())
		location := p.bold.Sprintf("%s:%d", path, diagnostic.Line)
		fmt.Fprintf(p.out, "%s %s %s: %s\n", location, severity, diagnostic.Rule, diagnostic.Message)

		p.printText("msgid", diagnostic.MsgID, diagnostic.MsgIDSpans)
		p.printText("msgstr", diagnostic.MsgStr, diagnostic.MsgStrSpans)
	}
}

func (p *Printer) printText(label, text string, spans []words.Span) {
	if len(spans) == 0 {
		return
	}
	fmt.Fprintf(p.out, "  %s: %s\n", label, text)
	indent := len(label) + 4
	fmt.Fprintf(p.out, "%s%s\n", strings.Repeat(" ", indent), caretLine(text, spans))
}

// PrintSummary writes the final issue counts.
func (p *Printer) PrintSummary(files int, counts map[checker.Severity]int) {
	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		fmt.Fprintf(p.out, "%d file(s) checked, no issues found\n", files)
		return
	}
	fmt.Fprintf(p.out, "%d file(s) checked, %d issue(s): %d error(s), %d warning(s), %d info\n",
		files, total,
		counts[checker.SeverityError], counts[checker.SeverityWarning], counts[checker.SeverityInfo])
}

// caretLine builds a marker line pointing at the spans in text. Span offsets
// are byte positions, markers are placed per rune.
func caretLine(text string, spans []words.Span) string {
	marks := make([]byte, utf8.RuneCountInString(text))
	for i := range marks {
		marks[i] = ' '
	}

	for _, span := range spans {
		start, end := runeIndex(text, span.Start), runeIndex(text, span.End)
		for i := start; i < end && i < len(marks); i++ {
			marks[i] = '^'
		}
	}
	return strings.TrimRight(string(marks), " ")
}

func runeIndex(text string, byteOffset int) int {
	if byteOffset > len(text) {
		byteOffset = len(text)
	}
	return utf8.RuneCountInString(text[:byteOffset])
}
