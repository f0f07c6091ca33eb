package formatting

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Detail is one KEY/VALUE row of a details table.
type Detail struct {
	Key   string
	Value string
}

// maxValueWidth truncates long values in details tables.
const maxValueWidth = 100

// createTable creates a new table with standard styling
func createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// WriteDetails renders rows as a rounded KEY/VALUE table.
func WriteDetails(w io.Writer, rows []Detail) {
	t := createTable(w)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("KEY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	for _, row := range rows {
		value := row.Value
		if len(value) > maxValueWidth {
			value = value[:maxValueWidth-3] + "..."
		}
		t.AppendRow(table.Row{text.FgHiCyan.Sprint(row.Key), value})
	}

	t.Render()
}

// EmptyMessage formats a notice shown instead of an empty listing.
func EmptyMessage(message string) string {
	return fmt.Sprintf("%s\n", text.FgYellow.Sprint(message))
}

// Status colours a yes/no value.
func Status(ok bool, yes, no string) string {
	if ok {
		return text.FgGreen.Sprint(yes)
	}
	return text.FgRed.Sprint(no)
}
