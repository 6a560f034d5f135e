// Package schema embeds the SQL that creates the SQLite store's tables.
package schema

import _ "embed"

// SQL creates every table the store needs. It is idempotent.
//
//go:embed schema.sql
var SQL string
