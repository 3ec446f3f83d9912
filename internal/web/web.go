// Package web carries the static landing page, embedded so the binary
// ships self-contained.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
