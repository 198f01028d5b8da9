// Package migrations embeds the CLI's SQLite cache schema for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
