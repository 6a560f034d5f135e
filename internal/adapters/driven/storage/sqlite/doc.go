// Package sqlite provides a SQLite-based implementation of the NameStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// A single table, stored_names (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT),
// is created on open from the embedded schema/schema.sql. AUTOINCREMENT keeps
// identifiers from ever being reused.
//
// # Data Location
//
// By default, the database is stored at ~/.namereg/data/names.db. Passing
// ":memory:" as the data directory opens a private in-memory database.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode; each insert is a single atomic statement.
package sqlite
