// Package assets embeds the static files served by the web map.
package assets

import _ "embed"

// Index is the built single-file Leaflet application.
// Regenerate with `go run ./cmd/minify` after editing the sources.
//
//go:embed index.html
var Index []byte

// Favicon is the site icon.
//
//go:embed favicon.ico
var Favicon []byte
