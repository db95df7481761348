// Package migrations embeds the schema migration files applied by the
// SQLite store at startup.
package migrations

import "embed"

// FS holds the numbered *.up.sql migration files.
//
//go:embed *.sql
var FS embed.FS
