package table

import "maps"

// Row is one record of the ledger, keyed by column name.
//
// The column set is fixed by the owning Table's header; a Row may omit a
// column (treated as Missing) but never carries keys outside the header.
// Rows are plain maps: Clone before mutating a row you do not own.
type Row map[string]Value

// Clone returns an independent copy of the row.
// Values are scalars, so a shallow copy is a full copy.
func (r Row) Clone() Row {
	return maps.Clone(r)
}

// Get returns the cell value for col, or Missing if the cell is unset.
func (r Row) Get(col string) Value {
	if v, ok := r[col]; ok && v != nil {
		return v
	}
	return Missing{}
}

// Has reports whether col is present on the row (even if Missing).
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Equal reports whether two rows hold identical values for identical keys.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for k, v := range r {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Table is the full ordered ledger: a fixed header plus the row sequence.
//
// The table flows by value through the rule pipeline; each rule receives
// the complete output of the previous rule and no component holds a
// reference across rule boundaries.
type Table struct {
	// Columns is the header in source order. Rules may only set values
	// for these columns.
	Columns []string

	// Rows in source order. Row expansion inserts new rows contiguously
	// at the expanded row's position.
	Rows []Row
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Clone returns a deep copy of the table (header shared, rows copied).
func (t Table) Clone() Table {
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone()
	}
	return Table{Columns: t.Columns, Rows: rows}
}

// HasColumn reports whether name is part of the header.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
