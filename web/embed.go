// Package web holds the embedded browser assets: HTML templates,
// static files and page content.
package web

import "embed"

// Content holds the embedded web frontend files.
//
//go:embed templates static content
var Content embed.FS
