package cardhtml_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/cardhtml"
)

func testConfig(sections ...card.Section) card.Config {
	return card.Config{
		Intro: card.Intro{
			Year:  "2025",
			Title: "Season's Greetings",
			From:  "The Harper Family",
		},
		Sections: sections,
	}
}

func renderHTML(t *testing.T, cfg card.Config, options render.Options) string {
	t.Helper()
	renderer, err := cardhtml.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	out, err := renderer.Render(context.Background(), cfg, options)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return string(out)
}

func TestRenderEscapesAuthoredText(t *testing.T) {
	cfg := testConfig(card.Section{
		ID:    "s1",
		Title: "<b>hi</b>",
		Body:  `greetings & <script>alert(1)</script>`,
	})

	html := renderHTML(t, cfg, render.Options{})

	if strings.Contains(html, "<b>hi</b>") {
		t.Fatalf("authored markup leaked through unescaped:\n%s", html)
	}
	if !strings.Contains(html, "&lt;b&gt;hi&lt;/b&gt;") {
		t.Fatalf("expected escaped title, got:\n%s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tag leaked through unescaped:\n%s", html)
	}
}

func TestRenderHeadingLevels(t *testing.T) {
	cfg := testConfig(
		card.Section{ID: "s1", Title: "First"},
		card.Section{ID: "s2", Title: "Second"},
		card.Section{ID: "s3", Title: "Third"},
	)

	html := renderHTML(t, cfg, render.Options{})

	if !strings.Contains(html, `<h1 class="section-title">First</h1>`) {
		t.Fatalf("first section title should use h1:\n%s", html)
	}
	if !strings.Contains(html, `<h2 class="section-title">Second</h2>`) {
		t.Fatalf("second section title should use h2:\n%s", html)
	}
	if strings.Count(html, `<h1 class="section-title">`) != 1 {
		t.Fatalf("expected exactly one section-level h1:\n%s", html)
	}
}

func TestRenderDerivesCatImage(t *testing.T) {
	cfg := testConfig(card.Section{
		ID:           "s1",
		CatAnimation: card.AnimationSleepCorner,
		CatImage:     "/stale/override.png",
	})

	html := renderHTML(t, cfg, render.Options{})

	if strings.Contains(html, "/stale/override.png") {
		t.Fatalf("authored cat image should be recomputed from the animation:\n%s", html)
	}
	sprite, ok := card.CatImageFor(card.AnimationSleepCorner)
	if !ok {
		t.Fatalf("CatImageFor(%q) reported unknown", card.AnimationSleepCorner)
	}
	if !strings.Contains(html, sprite) {
		t.Fatalf("expected derived sprite %q in output:\n%s", sprite, html)
	}
}

func TestRenderNoCatWhenAnimationNone(t *testing.T) {
	cfg := testConfig(card.Section{
		ID:           "s1",
		CatAnimation: card.AnimationNone,
		CatImage:     "/assets/cats/cat_00.png",
	})

	html := renderHTML(t, cfg, render.Options{})

	if strings.Contains(html, "cat-stage") {
		t.Fatalf("none animation must not render a cat stage:\n%s", html)
	}
}

func TestRenderImageModes(t *testing.T) {
	tests := []struct {
		name    string
		section card.Section
		single  bool
		grid    bool
	}{
		{
			name:    "no images renders nothing",
			section: card.Section{ID: "s1", Layout: card.LayoutGrid},
		},
		{
			name: "one image ignores layout",
			section: card.Section{
				ID:     "s1",
				Layout: card.LayoutHeroTop,
				Images: []card.Image{{Src: "/a.jpg", Alt: "a"}},
			},
			single: true,
		},
		{
			name: "single layout collapses extras",
			section: card.Section{
				ID:     "s1",
				Layout: card.LayoutSingle,
				Images: []card.Image{{Src: "/a.jpg"}, {Src: "/b.jpg"}},
			},
			single: true,
		},
		{
			name: "multiple images build scrapbook",
			section: card.Section{
				ID:     "s1",
				Layout: card.LayoutGrid,
				Images: []card.Image{{Src: "/a.jpg"}, {Src: "/b.jpg"}},
			},
			grid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderHTML(t, testConfig(tt.section), render.Options{})

			if got := strings.Contains(html, "section-image"); got != tt.single {
				t.Fatalf("single image mode = %v, expected %v:\n%s", got, tt.single, html)
			}
			if got := strings.Contains(html, "scrapbook"); got != tt.grid {
				t.Fatalf("scrapbook mode = %v, expected %v:\n%s", got, tt.grid, html)
			}
		})
	}
}

func TestRenderScrapbookSpans(t *testing.T) {
	cfg := testConfig(card.Section{
		ID:     "s1",
		Layout: card.LayoutHeroBottom,
		Images: []card.Image{
			{Src: "/a.jpg"},
			{Src: "/b.jpg", Span: card.SpanTall},
			{Src: "/c.jpg"},
		},
	})

	html := renderHTML(t, cfg, render.Options{})

	if !strings.Contains(html, `class="scrapbook layout-hero-bottom"`) {
		t.Fatalf("expected hero-bottom layout class:\n%s", html)
	}
	if !strings.Contains(html, `<div class="photo-wrapper tall">`) {
		t.Fatalf("explicit tall span missing:\n%s", html)
	}
	if !strings.Contains(html, `<div class="photo-wrapper hero">`) {
		t.Fatalf("hero-bottom should span the third image:\n%s", html)
	}
}

func TestRenderUnknownLayoutDegrades(t *testing.T) {
	cfg := testConfig(card.Section{
		ID:     "s1",
		Layout: card.Layout("mosaic"),
		Images: []card.Image{{Src: "/a.jpg"}, {Src: "/b.jpg"}},
	})

	html := renderHTML(t, cfg, render.Options{})

	if !strings.Contains(html, `<div class="scrapbook">`) {
		t.Fatalf("unknown layout should fall back to a plain scrapbook:\n%s", html)
	}
	if strings.Contains(html, "layout-mosaic") {
		t.Fatalf("unknown layout must not leak a layout class:\n%s", html)
	}
}

func TestRenderIntroDefaults(t *testing.T) {
	cfg := testConfig(card.Section{ID: "s1"})

	html := renderHTML(t, cfg, render.Options{})

	if !strings.Contains(html, `id="intro-overlay"`) {
		t.Fatalf("intro overlay missing:\n%s", html)
	}
	if !strings.Contains(html, "tap to enter") {
		t.Fatalf("expected default tap prompt:\n%s", html)
	}
	if !strings.Contains(html, "scroll-hint") {
		t.Fatalf("first section should carry the scroll hint:\n%s", html)
	}
}

func TestRenderSanitizesOrnament(t *testing.T) {
	cfg := testConfig(card.Section{ID: "s1"})
	cfg.Intro.Ornament = `<svg viewBox="0 0 10 10"><circle cx="5" cy="5" r="4"/><script>alert(1)</script></svg>`

	html := renderHTML(t, cfg, render.Options{})

	if !strings.Contains(html, `<circle cx="5" cy="5" r="4"`) {
		t.Fatalf("sanitized SVG content missing:\n%s", html)
	}
	if strings.Contains(html, "script") {
		t.Fatalf("script survived sanitization:\n%s", html)
	}
}

func TestRenderMarkTriggersVisible(t *testing.T) {
	cfg := testConfig(card.Section{
		ID:           "s1",
		CatAnimation: card.AnimationWalkAcross,
	})

	plain := renderHTML(t, cfg, render.Options{})
	if strings.Contains(plain, "is-visible") {
		t.Fatalf("cat should start hidden by default:\n%s", plain)
	}

	marked := renderHTML(t, cfg, render.Options{MarkTriggersVisible: true})
	if !strings.Contains(marked, "cat-container is-visible") {
		t.Fatalf("expected visible cat container:\n%s", marked)
	}
}

func TestRenderDocument(t *testing.T) {
	cfg := testConfig(card.Section{ID: "s1", Title: "Hello"})

	html := renderHTML(t, cfg, render.Options{
		Document:  true,
		AssetBase: "/static/",
		Theme: &theme.RendererConfig{
			CSSVars: map[string]string{
				"--card-bg": "#101418",
				"--card-fg": "#fafafa",
			},
		},
	})

	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Fatalf("document mode should emit a full page:\n%s", html)
	}
	if !strings.Contains(html, `<title>Season&#39;s Greetings</title>`) {
		t.Fatalf("intro title should become the page title:\n%s", html)
	}
	if !strings.Contains(html, `href="/static/`+cardhtml.StylesheetName+`"`) {
		t.Fatalf("stylesheet link missing or wrong:\n%s", html)
	}
	if !strings.Contains(html, "--card-bg: #101418;") {
		t.Fatalf("theme CSS vars missing:\n%s", html)
	}
}

func TestRenderDocumentThemeWithoutResolver(t *testing.T) {
	cfg := testConfig(card.Section{ID: "s1", Title: "Hello"})

	// A theme may carry only tokens and CSS vars; AssetURL is optional.
	html := renderHTML(t, cfg, render.Options{
		Document:  true,
		AssetBase: "/assets",
		Theme: &theme.RendererConfig{
			CSSVars: map[string]string{"--accent": "#f00"},
		},
	})

	if !strings.Contains(html, `href="/assets/`+cardhtml.StylesheetName+`"`) {
		t.Fatalf("expected asset-base stylesheet fallback:\n%s", html)
	}
	if !strings.Contains(html, "--accent: #f00;") {
		t.Fatalf("theme CSS vars missing:\n%s", html)
	}
}

func TestRenderDocumentThemeStylesheet(t *testing.T) {
	cfg := testConfig(card.Section{ID: "s1", Title: "Hello"})

	html := renderHTML(t, cfg, render.Options{
		Document:  true,
		AssetBase: "/assets",
		Theme: &theme.RendererConfig{
			AssetURL: func(key string) string {
				if key == "card.stylesheet" {
					return "/themes/noel/card.css"
				}
				return ""
			},
		},
	})

	if !strings.Contains(html, `href="/themes/noel/card.css"`) {
		t.Fatalf("theme stylesheet not resolved:\n%s", html)
	}
}

func TestSnapshotSectionIDs(t *testing.T) {
	cfg := testConfig(
		card.Section{ID: "alpha"},
		card.Section{ID: "beta"},
	)

	renderer, err := cardhtml.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	snap, err := renderer.Snapshot(context.Background(), cfg, render.Options{})
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	if snap.SectionCount() != 2 {
		t.Fatalf("SectionCount() = %d, expected 2", snap.SectionCount())
	}
	if snap.SectionIDs[0] != "alpha" || snap.SectionIDs[1] != "beta" {
		t.Fatalf("SectionIDs = %v", snap.SectionIDs)
	}
	if len(snap.HTML) == 0 {
		t.Fatal("snapshot HTML is empty")
	}
}
