package migrations

import "embed"

// Files holds the forward-only schema migrations shared by every supported
// database driver.
//
//go:embed *.sql
var Files embed.FS
