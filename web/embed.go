// Package web embeds the HTML templates and static assets served by the
// application.
package web

import "embed"

// TemplatesFS embeds the HTML templates for server-side rendering.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS embeds static assets.
//
//go:embed static/*
var StaticFS embed.FS
