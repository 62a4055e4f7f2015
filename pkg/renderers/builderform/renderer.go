// Package builderform renders the editor column of the visual builder: one
// form whose control names are the field paths the binder feeds back into
// the config.
package builderform

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	rendertemplate "github.com/goliatone/go-cardgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-cardgen/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded form templates for callers that want to
// fork the bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the builder form markup for a config.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the form renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("builderform: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "builderform"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full form for the given config. Options are accepted
// for interface parity; the form has no document mode.
func (r *Renderer) Render(_ context.Context, cfg card.Config, _ render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("builderform: template renderer is nil")
	}

	view := buildFormView(cfg)
	out, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"intro":            view.Intro,
		"audio":            view.Audio,
		"sections":         view.Sections,
		"canDeleteSection": view.CanDeleteSection,
	})
	if err != nil {
		return nil, fmt.Errorf("builderform: render form: %w", err)
	}
	return []byte(out), nil
}
