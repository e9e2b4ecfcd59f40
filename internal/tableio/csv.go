package tableio

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/csomaati/expensecat/internal/table"
)

// ReadCSV loads a ledger from CSV. The first record is the header and
// fixes the table's column set.
//
// Bank exports are UTF-8 but frequently carry a BOM; the reader strips it
// via an encoding transform so the first column name comes out clean.
// Non-ASCII headers and values pass through untouched.
//
// Empty cells load as the missing value; everything else stays text, so
// the source byte representation of amounts survives the run.
func ReadCSV(r io.Reader) (table.Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return table.Table{}, fmt.Errorf("read ledger: empty input")
	}
	if err != nil {
		return table.Table{}, fmt.Errorf("read ledger header: %w", err)
	}
	columns := make([]string, len(header))
	copy(columns, header)

	var rows []table.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table.Table{}, fmt.Errorf("read ledger row %d: %w", len(rows)+2, err)
		}

		row := make(table.Row, len(columns))
		for i, col := range columns {
			if i >= len(rec) || rec[i] == "" {
				row[col] = table.Missing{}
				continue
			}
			row[col] = table.Text(rec[i])
		}
		rows = append(rows, row)
	}

	return table.Table{Columns: columns, Rows: rows}, nil
}

// WriteCSV renders the table as CSV in header order. Missing cells render
// as empty fields.
func WriteCSV(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}

	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			rec[i] = row.Get(col).Format()
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
