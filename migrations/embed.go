// Package migrations holds the versioned SQL schema, embedded in the binaries.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
