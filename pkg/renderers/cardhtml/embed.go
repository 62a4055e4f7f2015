package cardhtml

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the asset served next to rendered documents.
const StylesheetName = "cardgen-card.css"

// TemplatesFS exposes the embedded template bundle so consumers can use the
// built-in card rendering out of the box, or fork the bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet bundle so callers can serve it
// over HTTP or copy it into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen; fall back to the raw FS so assets stay usable.
		return embeddedAssets
	}
	return sub
}
