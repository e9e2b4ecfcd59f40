// Package tableio holds the thin I/O collaborators around the in-memory
// table: CSV loading and rendering, and an optional SQLite sink for the
// final table.
//
// Nothing here has rule-engine knowledge; the engine receives a loaded
// table.Table and hands the final one back for writing.
package tableio
