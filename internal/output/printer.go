// Package output renders command results as a human-readable table or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Format selects how results are rendered
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat parses a --output value
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatTable, "text", "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid --output: %s (use table|json)", s)
	}
}

// Row is a single label/value line of a table
type Row struct {
	Label string
	Value string
}

// Printer centralizes output formatting for commands.
// Styling is applied only when writing table output to a terminal.
type Printer struct {
	format Format
	out    io.Writer
	styled bool

	labelStyle lipgloss.Style
	warnStyle  lipgloss.Style
}

// NewPrinter returns a printer writing to out
func NewPrinter(format Format, out io.Writer) *Printer {
	return &Printer{
		format:     format,
		out:        out,
		styled:     format == FormatTable && isTerminal(out) && os.Getenv("NO_COLOR") == "",
		labelStyle: lipgloss.NewStyle().Bold(true),
		warnStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// IsJSON reports whether results should be rendered as JSON
func (p *Printer) IsJSON() bool { return p.format == FormatJSON }

// JSON writes v as a single-line JSON document
func (p *Printer) JSON(v any) error {
	return json.NewEncoder(p.out).Encode(v)
}

// Line writes one line of text
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}

// Warn writes a highlighted line of text
func (p *Printer) Warn(s string) {
	if p.styled {
		s = p.warnStyle.Render(s)
	}
	fmt.Fprintln(p.out, s)
}

// Table writes rows with labels suffixed by ":" and values aligned in one column
func (p *Printer) Table(rows []Row) {
	width := 0
	for _, r := range rows {
		if l := len(r.Label) + 1; l > width {
			width = l
		}
	}

	var b strings.Builder
	for _, r := range rows {
		label := r.Label + ":"
		pad := strings.Repeat(" ", width-len(label)+1)
		if p.styled {
			label = p.labelStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(pad)
		b.WriteString(r.Value)
		b.WriteString("\n")
	}
	fmt.Fprint(p.out, b.String())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
