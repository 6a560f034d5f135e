// Package bunstore provides a NameStore backed by github.com/uptrace/bun so the
// registry can run against PostgreSQL, MySQL or SQLite from a single adapter.
//
// The driver name selects both the database/sql driver and the bun dialect:
//
//   - "postgres": jackc/pgx stdlib driver, pgdialect
//   - "mysql": go-sql-driver/mysql, mysqldialect
//   - "sqlite": modernc.org/sqlite, sqlitedialect
//
// The stored_names table is created on open from the embedded schema for the
// selected dialect. Identifiers are generated by the database (BIGSERIAL,
// AUTO_INCREMENT or INTEGER PRIMARY KEY AUTOINCREMENT).
package bunstore
