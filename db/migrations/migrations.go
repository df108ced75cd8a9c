// Package migrations embeds the SQL schema of the campaign store.
package migrations

import "embed"

// FS holds the numbered up and down files read by golang-migrate through
// the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
