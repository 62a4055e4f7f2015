// Package cardgen renders declarative holiday-card configs as scrolling HTML
// cards and powers the visual builder around them. The root package is a thin
// facade; the pieces live under pkg/.
package cardgen

import (
	"context"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/builderform"
	"github.com/goliatone/go-cardgen/pkg/renderers/cardhtml"
)

// Version of the cardgen module.
const Version = "0.1.0"

// Config is the full declarative card description.
type Config = card.Config

// Intro is the gating splash overlay block.
type Intro = card.Intro

// Audio configures the looping background track.
type Audio = card.Audio

// Section is one scrollable unit of the card.
type Section = card.Section

// Image is a single photo inside a section.
type Image = card.Image

// Default returns the starter config the builder opens with.
func Default() Config {
	return card.Default()
}

// Import parses a JSON or YAML config document.
func Import(data []byte) (Config, error) {
	return card.Import(data)
}

// Export serializes a config as pretty-printed JSON.
func Export(cfg Config) ([]byte, error) {
	return card.Export(cfg)
}

// AssetsFS exposes the stylesheet bundle rendered documents link against.
func AssetsFS() fs.FS {
	return cardhtml.AssetsFS()
}

// Option adjusts a single RenderHTML call.
type Option func(*render.Options)

// WithDocument wraps the fragment in a complete HTML page.
func WithDocument(document bool) Option {
	return func(o *render.Options) {
		o.Document = document
	}
}

// WithAssetBase sets the base URL for the stylesheet and sprites.
func WithAssetBase(base string) Option {
	return func(o *render.Options) {
		o.AssetBase = base
	}
}

// WithTheme applies a theme configuration to the rendered document.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *render.Options) {
		o.Theme = cfg
	}
}

// RenderHTML renders a config with the built-in card renderer. It is the
// simplest entry point for one-shot rendering.
func RenderHTML(ctx context.Context, cfg Config, options ...Option) ([]byte, error) {
	opts := render.Options{AssetBase: "/assets"}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	renderer, err := cardhtml.New()
	if err != nil {
		return nil, fmt.Errorf("cardgen: %w", err)
	}
	return renderer.Render(ctx, cfg, opts)
}

// NewRegistry returns a renderer registry with the built-in renderers
// registered: the card renderer and the builder form renderer.
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	cardRenderer, err := cardhtml.New()
	if err != nil {
		return nil, fmt.Errorf("cardgen: %w", err)
	}
	formRenderer, err := builderform.New()
	if err != nil {
		return nil, fmt.Errorf("cardgen: %w", err)
	}

	registry.MustRegister(cardRenderer)
	registry.MustRegister(formRenderer)
	return registry, nil
}
