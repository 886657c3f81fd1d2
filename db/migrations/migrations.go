// Package migrations holds the distribution_snapshots schema.
package migrations

import "embed"

// FS holds the numbered up and down scripts.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service runs against. Raise it with
// every new pair of scripts.
const Version = 1
