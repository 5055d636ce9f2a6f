package swagger

import "embed"

// swaggerDocs carries the committed OpenAPI artifact so the binary can serve
// its own documentation without a build-time generation step.
//
//go:embed docs/*
var swaggerDocs embed.FS
