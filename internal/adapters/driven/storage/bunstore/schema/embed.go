// Package schema embeds the per-dialect SQL that creates the bun store's tables.
package schema

import "embed"

// FS holds one <dialect>.sql file per supported driver.
//
//go:embed *.sql
var FS embed.FS
