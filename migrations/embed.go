// Package migrations holds the goose SQL migrations for the holidays and
// holiday_activities tables.
package migrations

import "embed"

// FS holds every *.sql migration, embedded at compile time. main runs it
// through a goose provider at startup and repo tests apply it in TestMain.
//
//go:embed *.sql
var FS embed.FS
