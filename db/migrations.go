// Package db bundles the schema migrations. The SQL is written to run unchanged on
// PostgreSQL and SQLite.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
