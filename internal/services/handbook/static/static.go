package static

import "embed"

// FS exposes handbook static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
