package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"kctx/internal/config"
	"kctx/internal/formatting"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// Listing is a result set that can be rendered in any output format.
type Listing struct {
	Headers []string
	Rows    [][]string
	// WideHeaders and WideRows are appended to Headers and Rows in wide
	// output. WideRows, when set, has one entry per row.
	WideHeaders []string
	WideRows    [][]string
	// Names is printed by -o name.
	Names []string
	// Data is encoded by -o json, -o yaml and -o go-template.
	Data interface{}
	// Empty is shown instead of an empty table unless output is quiet.
	Empty string
}

// Printer writes listings in a single output format.
type Printer struct {
	Format    string
	NoHeaders bool
	Quiet     bool
	Out       io.Writer
}

// NewPrinter creates a printer for format writing to out.
func NewPrinter(out io.Writer, format string, noHeaders, quiet bool) *Printer {
	return &Printer{Format: format, NoHeaders: noHeaders, Quiet: quiet, Out: out}
}

// IsTable reports whether the printer produces human-oriented tables.
func (p *Printer) IsTable() bool {
	return p.Format == "" || p.Format == config.OutputTable || p.Format == config.OutputWide
}

// Print renders l.
func (p *Printer) Print(l Listing) error {
	switch {
	case p.Format == config.OutputJSON:
		return formatting.WriteJSON(p.Out, l.Data)
	case p.Format == config.OutputYAML:
		return formatting.WriteYAML(p.Out, l.Data)
	case p.Format == config.OutputName:
		for _, name := range l.Names {
			if _, err := fmt.Fprintln(p.Out, name); err != nil {
				return err
			}
		}
		return nil
	case strings.HasPrefix(p.Format, config.OutputGoTemplatePrefix):
		return formatting.WriteTemplate(p.Out, strings.TrimPrefix(p.Format, config.OutputGoTemplatePrefix), l.Data)
	case p.IsTable():
		p.printTable(l)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", p.Format)
	}
}

func (p *Printer) printTable(l Listing) {
	if len(l.Rows) == 0 && l.Empty != "" {
		if !p.Quiet {
			fmt.Fprint(p.Out, formatting.EmptyMessage(l.Empty))
		}
		return
	}

	wide := p.Format == config.OutputWide && len(l.WideHeaders) > 0

	headers := l.Headers
	if wide {
		headers = append(append([]string{}, l.Headers...), l.WideHeaders...)
	}

	tw := NewPlainTableWriter(p.Out)
	tw.SetHeaders(headers)
	tw.SetNoHeaders(p.NoHeaders)
	for i, row := range l.Rows {
		if wide && i < len(l.WideRows) {
			row = append(append([]string{}, row...), l.WideRows[i]...)
		}
		tw.AppendRow(row)
	}
	tw.Render()
}

// ConfigureColors turns colour output off when out is not a terminal or
// NO_COLOR is set.
func ConfigureColors(out io.Writer) {
	f, ok := out.(*os.File)
	if os.Getenv("NO_COLOR") != "" || !ok || !IsTerminal(f) {
		text.DisableColors()
		return
	}
	text.EnableColors()
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// CurrentMarker returns the CURRENT column value.
func CurrentMarker(current bool) string {
	if current {
		return text.FgGreen.Sprint("*")
	}
	return ""
}
