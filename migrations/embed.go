// Package migrations embeds the SQL schema migrations, one directory per
// database dialect, so the binary can migrate without files on disk.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
