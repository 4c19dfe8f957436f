// Package db embeds the SQL migrations applied at startup.
package db

import "embed"

// Migrations contains all SQL migration files embedded at compile time.
//
//go:embed migrations/*.sql
var Migrations embed.FS
