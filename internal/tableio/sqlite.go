package tableio

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csomaati/expensecat/internal/table"
)

// WriteSQLite writes the final table into a SQLite database, replacing
// the named SQL table if it already exists.
//
// This is an output sink only - the engine never reads intermediate state
// back. Missing cells store as NULL, numbers as REAL, everything else as
// TEXT. Column names (including non-ASCII ones) are carried over as quoted
// identifiers.
func WriteSQLite(ctx context.Context, path, name string, t table.Table) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("write sqlite: table has no columns")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Single writer, like any SQLite use: avoids SQLITE_BUSY on the
	// insert loop.
	db.SetMaxOpenConns(1)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	quoted := make([]string, len(t.Columns))
	defs := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		quoted[i] = quoteIdent(col)
		defs[i] = quoted[i] + " TEXT"
		marks[i] = "?"
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return fmt.Errorf("drop existing table: %w", err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(name), strings.Join(quoted, ", "), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			args[i] = sqlValue(row.Get(col))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// sqlValue maps a cell value onto its SQL representation.
func sqlValue(v table.Value) any {
	switch val := v.(type) {
	case table.Text:
		return string(val)
	case table.Number:
		return float64(val)
	default:
		return nil // Missing -> NULL
	}
}

// quoteIdent quotes a SQL identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
