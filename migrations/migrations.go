// Package migrations holds the goose SQL migrations, embedded so the
// migrate command ships as a single binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
