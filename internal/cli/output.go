package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/csomaati/expensecat/internal/table"
	"github.com/csomaati/expensecat/internal/tableio"
)

// renderTable writes the final table in the requested format.
func renderTable(w io.Writer, t table.Table, format string) error {
	switch format {
	case "csv":
		return tableio.WriteCSV(w, t)
	case "text":
		return renderText(w, t)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderText prints the table column-aligned for terminal reading.
// Missing cells render empty.
func renderText(w io.Writer, t table.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, col := range t.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	for _, row := range t.Rows {
		for i, col := range t.Columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, row.Get(col).Format())
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
