package render

import (
	theme "github.com/goliatone/go-theme"
)

// Options describe per-request data renderers can use to customise their
// output without touching the config itself.
type Options struct {
	// Document wraps the output in a complete HTML page (doctype, stylesheet
	// link, theme CSS variables). When false only the card body fragment is
	// produced, for hosts that own the surrounding page.
	Document bool
	// AssetBase prefixes the stylesheet and script URLs emitted in document
	// mode, e.g. "/static".
	AssetBase string
	// MarkTriggersVisible forces every cat trigger into its visible state.
	// The builder preview uses this so sections animate without scrolling.
	MarkTriggersVisible bool
	// Theme carries resolved theme tokens and asset URLs. Nil means the
	// built-in stylesheet with default variables.
	Theme *theme.RendererConfig
}
