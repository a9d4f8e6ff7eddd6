// Package root exposes assets embedded into the binary, currently the
// database migrations applied by the migrate subcommand.
package root

import "embed"

// Migrations holds the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
