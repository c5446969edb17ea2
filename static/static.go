// Package static embeds the API documentation served at /docs and /static/*.
package static

import "embed"

//go:embed openapi.html openapi.json
var Files embed.FS

// OpenAPIUI is the docs page served at /docs.
const OpenAPIUI = "openapi.html"
