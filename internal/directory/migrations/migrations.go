// Package migrations embeds the goose migrations of the Postgres credential directory.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
