package table

import "strconv"

// Value is a sealed interface over the scalar cell types.
// Only Text, Number, and Missing implement it.
type Value interface {
	value() // Sealed - only these types implement it

	// Format returns the string form of the value as it appears in
	// rendered output and in property bags. Missing formats as "".
	Format() string
}

// Text is a string cell value.
type Text string

func (Text) value() {}

// Format returns the string unchanged.
func (t Text) Format() string { return string(t) }

// Number is a numeric cell value.
//
// CSV sources never produce Number - untyped input stays Text so the
// original byte representation survives the run (a ledger amount "10.50"
// must not render back as "10.5"). Typed sources and programmatic
// construction may carry Number; the SQLite sink stores it as REAL.
type Number float64

func (Number) value() {}

// Format renders the number with the minimal digits that round-trip.
func (n Number) Format() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Missing is the null/absent cell value. An empty CSV cell loads as Missing.
type Missing struct{}

func (Missing) value() {}

// Format returns the empty string.
func (Missing) Format() string { return "" }

// IsMissing reports whether v is the missing value.
// A nil Value (cell never set) also counts as missing.
func IsMissing(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Missing)
	return ok
}
