// Package migrations embeds the schema so the binary can bootstrap a fresh
// database without the atlas CLI.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
