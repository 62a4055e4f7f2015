package cardhtml

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	rendertemplate "github.com/goliatone/go-cardgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-cardgen/pkg/render/template/gotemplate"
)

// themeAssetStylesheet is the go-theme asset key the renderer resolves when a
// theme is supplied with the render options.
const themeAssetStylesheet = "card.stylesheet"

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

// Renderer is the deterministic config-to-markup card renderer.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the card renderer applying any provided options.
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
			return nil, fmt.Errorf("cardhtml: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "cardhtml"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the card markup: the intro overlay followed by every
// section in order. With options.Document set the fragment is wrapped in a
// complete HTML page.
func (r *Renderer) Render(_ context.Context, cfg card.Config, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("cardhtml: template renderer is nil")
	}

	view := buildView(cfg, options)
	fragment, err := r.templates.RenderTemplate("templates/card.tmpl", map[string]any{
		"intro":    view.Intro,
		"sections": view.Sections,
	})
	if err != nil {
		return nil, fmt.Errorf("cardhtml: render card: %w", err)
	}

	if !options.Document {
		return []byte(fragment), nil
	}

	page, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":         pageTitle(cfg),
		"body":          fragment,
		"stylesheetUrl": stylesheetURL(options),
		"cssVarsStyle":  cssVarsStyle(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("cardhtml: render page: %w", err)
	}
	return []byte(page), nil
}

// Snapshot renders the card and pairs the markup with the ordered section
// ids, which preview reconcilers use to address sections without parsing
// markup.
func (r *Renderer) Snapshot(ctx context.Context, cfg card.Config, options render.Options) (Snapshot, error) {
	html, err := r.Render(ctx, cfg, options)
	if err != nil {
		return Snapshot{}, err
	}
	ids := make([]string, len(cfg.Sections))
	for i, section := range cfg.Sections {
		ids[i] = section.ID
	}
	return Snapshot{HTML: html, SectionIDs: ids}, nil
}

// Snapshot is an immutable render result.
type Snapshot struct {
	HTML       []byte
	SectionIDs []string
}

// SectionCount reports how many sections the snapshot rendered.
func (s Snapshot) SectionCount() int {
	return len(s.SectionIDs)
}

func pageTitle(cfg card.Config) string {
	if cfg.Intro.Title != "" {
		return cfg.Intro.Title
	}
	return "Holiday Card"
}

func stylesheetURL(options render.Options) string {
	if options.Theme != nil && options.Theme.AssetURL != nil {
		if resolved := strings.TrimSpace(options.Theme.AssetURL(themeAssetStylesheet)); resolved != "" {
			return resolved
		}
	}
	base := strings.TrimSuffix(options.AssetBase, "/")
	return base + "/" + StylesheetName
}

// cssVarsStyle flattens theme CSS variables into a :root block, keeping key
// order stable for deterministic output.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
