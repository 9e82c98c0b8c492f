package migrations

import "embed"

// Files holds the forward-only SQL migrations shipped inside the binary.
//
//go:embed *.sql
var Files embed.FS
