package table

// RowFunc transforms one row into zero or more replacement rows.
//
// The returned slice replaces the input row's slot in the table:
//   - nil or empty: the row is dropped
//   - one row: the row is kept (possibly mutated via a clone)
//   - many rows: the row is split/duplicated
//
// A RowFunc must treat its input as read-only and must not depend on any
// other row's input or output within the same FlatMap call. An error from
// a RowFunc is fatal and aborts the whole lift; per-row recoverable
// failures are the caller's business (return the original row instead).
type RowFunc func(Row) ([]Row, error)

// FlatMap lifts a per-row function to a whole-table transformation.
//
// Every row is processed independently and the output table is the
// concatenation, in input order, of each row's replacement set. Rows need
// no identity beyond their position during the lift.
//
// The reference behavior is sequential; the independence contract on
// RowFunc is what would permit a parallel implementation, as long as
// assembly stays in input order.
func (t Table) FlatMap(fn RowFunc) (Table, error) {
	out := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		replacement, err := fn(row)
		if err != nil {
			return Table{}, err
		}
		out = append(out, replacement...)
	}
	return Table{Columns: t.Columns, Rows: out}, nil
}
